package port

import (
	"context"

	"tumorvision/internal/domain/entity"
)

// ChatRepository stores chatbot conversations per session
type ChatRepository interface {
	// Append adds messages to the end of the session history
	Append(ctx context.Context, sessionID string, msgs ...entity.ChatMessage) error

	// List returns the session history oldest first; unknown sessions are empty
	List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)

	// Clear drops the session history
	Clear(ctx context.Context, sessionID string) error
}
