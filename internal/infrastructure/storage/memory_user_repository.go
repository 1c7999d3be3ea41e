package storage

import (
	"context"
	"sync"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// MemoryUserRepository keeps bot users in process memory
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository creates an empty repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get returns the user, creating one if not found. Callers get a copy.
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()

	if exists {
		u := *user
		return &u, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have created it meanwhile.
	if user, exists := r.users[userID]; exists {
		u := *user
		return &u, nil
	}

	newUser := entity.NewUser(userID, chatID)
	r.users[userID] = newUser
	u := *newUser
	return &u, nil
}

// Save stores the user state
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	u := *user

	r.mu.Lock()
	r.users[user.ID] = &u
	r.mu.Unlock()

	return nil
}

// UpdateState changes the state of a known user
func (r *MemoryUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, exists := r.users[userID]; exists {
		user.SetState(state)
	}

	return nil
}

var _ port.UserRepository = (*MemoryUserRepository)(nil)
