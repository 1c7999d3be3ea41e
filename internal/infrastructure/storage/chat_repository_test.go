package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

func exerciseChatRepository(t *testing.T, repo port.ChatRepository) {
	t.Helper()
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	history, err := repo.List(ctx, "unknown")
	require.NoError(t, err)
	require.Empty(t, history)

	require.NoError(t, repo.Append(ctx, "s1",
		entity.ChatMessage{Speaker: entity.SpeakerUser, Text: "help", At: at},
		entity.ChatMessage{Speaker: entity.SpeakerBot, Text: "I'm here to help", At: at.Add(time.Second)},
	))
	require.NoError(t, repo.Append(ctx, "s2", entity.ChatMessage{Speaker: entity.SpeakerUser, Text: "other", At: at}))
	require.NoError(t, repo.Append(ctx, "s1", entity.ChatMessage{Speaker: entity.SpeakerUser, Text: "glioma", At: at.Add(2 * time.Second)}))

	history, err = repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, "help", history[0].Text)
	require.Equal(t, entity.SpeakerBot, history[1].Speaker)
	require.Equal(t, "glioma", history[2].Text)
	require.True(t, history[0].At.Equal(at))

	require.NoError(t, repo.Clear(ctx, "s1"))
	history, err = repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, history)

	history, err = repo.List(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestMemoryChatRepository(t *testing.T) {
	exerciseChatRepository(t, NewMemoryChatRepository())
}

func TestSQLiteChatRepository(t *testing.T) {
	repo, err := OpenSQLiteChatRepository(filepath.Join(t.TempDir(), "db", "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	exerciseChatRepository(t, repo)
}

func TestSQLiteChatRepository_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.db")
	ctx := context.Background()

	repo, err := OpenSQLiteChatRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, "s", entity.ChatMessage{Speaker: entity.SpeakerUser, Text: "hi", At: time.Now()}))
	require.NoError(t, repo.Close())

	repo, err = OpenSQLiteChatRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	history, err := repo.List(ctx, "s")
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestChatKey(t *testing.T) {
	require.Equal(t, "chat:tg:42:history", chatKey("tg:42"))
}

func TestDecodeChatMessages(t *testing.T) {
	history, err := decodeChatMessages([]string{`{"speaker":"bot","text":"hi","at":"2026-01-02T03:04:05Z"}`})
	require.NoError(t, err)
	require.Equal(t, entity.SpeakerBot, history[0].Speaker)

	_, err = decodeChatMessages([]string{"{"})
	require.Error(t, err)
}
