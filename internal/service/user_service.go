package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/iliyamo/accommodation-reservation/internal/dto"
	"github.com/iliyamo/accommodation-reservation/internal/mapping"
	"github.com/iliyamo/accommodation-reservation/internal/model"
	"github.com/iliyamo/accommodation-reservation/internal/queue"
	"github.com/iliyamo/accommodation-reservation/internal/repository"
)

type UserService struct {
	users *repository.Table[model.User]
	notifier
}

func NewUserService(g *repository.Gateway, events EventPublisher, log *zap.Logger) *UserService {
	return &UserService{users: g.Users, notifier: newNotifier(events, log, queue.EntityUser)}
}

func (s *UserService) List(ctx context.Context) ([]dto.User, error) {
	rows, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return mapping.UsersToDto(rows), nil
}

// Get returns nil, nil when no user has the id.
func (s *UserService) Get(ctx context.Context, id uint64) (*dto.User, error) {
	u, err := s.users.Find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	out := mapping.UserToDto(*u)
	return &out, nil
}

// Create ignores any id in d; the store assigns one.
func (s *UserService) Create(ctx context.Context, d dto.User) (dto.User, error) {
	u := mapping.UserFromDto(d)
	u.ID = 0
	if err := s.users.Insert(ctx, &u); err != nil {
		return dto.User{}, fmt.Errorf("create user: %w", err)
	}
	s.notify(ctx, queue.ActionCreated, u.ID)
	return mapping.UserToDto(u), nil
}

// Update overwrites every mutable field of the user identified by d.ID.
// It returns nil, nil when that user does not exist.
func (s *UserService) Update(ctx context.Context, d dto.User) (*dto.User, error) {
	u, err := s.users.Get(ctx, d.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", d.ID, err)
	}
	mapping.ApplyUser(d, u)
	err = s.users.Save(ctx, u)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil // deleted since it was loaded
	}
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", d.ID, err)
	}
	s.notify(ctx, queue.ActionUpdated, u.ID)
	out := mapping.UserToDto(*u)
	return &out, nil
}

// Delete reports false when no user has the id.  A user that still has
// reservations is not deleted and ErrInUse is returned.
func (s *UserService) Delete(ctx context.Context, id uint64) (bool, error) {
	u, err := s.users.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load user %d: %w", id, err)
	}
	if err := s.users.Remove(ctx, u); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("delete user %d: %w", id, ErrInUse)
		}
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	s.notify(ctx, queue.ActionDeleted, id)
	return true, nil
}
