package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/infrastructure/storage"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tell me about GLIOMA", chatRules[0].reply},
		{"meningioma?", chatRules[1].reply},
		{"pituitary gland", chatRules[2].reply},
		{"I got no tumor", chatRules[3].reply},
		{"clear scan!", chatRules[3].reply},
		{"help me", chatRules[4].reply},
		{"what is the weather", fallbackReply},
		// earlier rules win
		{"glioma or meningioma", chatRules[0].reply},
		{"help with pituitary", chatRules[2].reply},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Respond(tt.in), tt.in)
	}
}

func TestChatService_SendRecordsHistory(t *testing.T) {
	svc := NewChatService(storage.NewMemoryChatRepository())
	fixed := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	reply, err := svc.Send(ctx, "s1", "  help  ")
	require.NoError(t, err)
	require.Equal(t, entity.SpeakerBot, reply.Speaker)
	require.Equal(t, chatRules[4].reply, reply.Text)

	_, err = svc.Send(ctx, "s1", "glioma")
	require.NoError(t, err)

	history, err := svc.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	require.Equal(t, entity.ChatMessage{Speaker: entity.SpeakerUser, Text: "help", At: fixed}, history[0])
	require.Equal(t, entity.SpeakerBot, history[3].Speaker)

	require.NoError(t, svc.Reset(ctx, "s1"))
	history, err = svc.History(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestChatService_EmptyMessage(t *testing.T) {
	svc := NewChatService(storage.NewMemoryChatRepository())
	_, err := svc.Send(context.Background(), "s1", "   ")
	require.ErrorIs(t, err, entity.ErrEmptyMessage)

	history, err := svc.History(context.Background(), "s1")
	require.NoError(t, err)
	require.Empty(t, history)
}
