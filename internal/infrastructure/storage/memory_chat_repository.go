package storage

import (
	"context"
	"sync"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// MemoryChatRepository keeps chat histories in process memory
type MemoryChatRepository struct {
	mu       sync.RWMutex
	sessions map[string][]entity.ChatMessage
}

// NewMemoryChatRepository creates an empty repository
func NewMemoryChatRepository() *MemoryChatRepository {
	return &MemoryChatRepository{
		sessions: make(map[string][]entity.ChatMessage),
	}
}

func (r *MemoryChatRepository) Append(ctx context.Context, sessionID string, msgs ...entity.ChatMessage) error {
	r.mu.Lock()
	r.sessions[sessionID] = append(r.sessions[sessionID], msgs...)
	r.mu.Unlock()
	return nil
}

func (r *MemoryChatRepository) List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.sessions[sessionID]
	out := make([]entity.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}

func (r *MemoryChatRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	return nil
}

var _ port.ChatRepository = (*MemoryChatRepository)(nil)
