package port

import (
	"context"

	"tumorvision/internal/domain/entity"
)

// UserRepository stores bot users and their dialogue state
type UserRepository interface {
	// Get returns the user, creating one in the main menu if unknown
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save persists the user
	Save(ctx context.Context, user *entity.User) error

	// UpdateState changes the state of a known user
	UpdateState(ctx context.Context, userID int64, state entity.UserState) error
}
