package app

import (
	"context"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) BeginScan(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingScan)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// FinishScan returns a user who was waiting for a scan to the main menu.
// It reports whether a scan was pending.
func (s *UserService) FinishScan(ctx context.Context, user *entity.User) (bool, error) {
	if !user.AwaitingScan() {
		return false, nil
	}
	if err := s.repo.UpdateState(ctx, user.ID, entity.StateMainMenu); err != nil {
		return false, err
	}
	user.SetState(entity.StateMainMenu)
	return true, nil
}
