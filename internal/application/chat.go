package app

import (
	"context"
	"strings"
	"time"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

type keywordRule struct {
	keywords []string
	reply    string
}

// Rules are tried in order; the first rule with a matching keyword wins.
var chatRules = []keywordRule{
	{[]string{"glioma"}, "Gliomas are serious, but treatments are improving. Would you like to know about therapies?"},
	{[]string{"meningioma"}, "Meningiomas are usually benign. Regular checkups help. Want more info?"},
	{[]string{"pituitary"}, "Pituitary tumors can affect hormones. I can guide you through symptoms or treatment."},
	{[]string{"no tumor", "clear scan"}, "That's great news! Keep up with your health checkups!"},
	{[]string{"help"}, "I'm here to help with brain tumor info. Ask about symptoms, types, or treatments."},
}

const fallbackReply = "I'm not sure about that. Try asking about glioma, meningioma, pituitary tumors, or general help."

// Respond returns the chatbot answer for a message. Matching is
// case-insensitive substring search.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return fallbackReply
}

// ChatService answers chatbot messages and keeps the per-session history.
type ChatService struct {
	repo port.ChatRepository
	now  func() time.Time
}

func NewChatService(repo port.ChatRepository) *ChatService {
	return &ChatService{repo: repo, now: time.Now}
}

// Send records the user message and the reply, and returns the reply.
func (s *ChatService) Send(ctx context.Context, sessionID, message string) (entity.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entity.ChatMessage{}, entity.ErrEmptyMessage
	}

	now := s.now().UTC()
	in := entity.ChatMessage{Speaker: entity.SpeakerUser, Text: message, At: now}
	out := entity.ChatMessage{Speaker: entity.SpeakerBot, Text: Respond(message), At: now}

	if err := s.repo.Append(ctx, sessionID, in, out); err != nil {
		return entity.ChatMessage{}, err
	}
	return out, nil
}

func (s *ChatService) History(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	return s.repo.List(ctx, sessionID)
}

func (s *ChatService) Reset(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}
