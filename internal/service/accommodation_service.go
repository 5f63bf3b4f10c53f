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

type AccommodationService struct {
	accommodations *repository.Table[model.Accommodation]
	notifier
}

func NewAccommodationService(g *repository.Gateway, events EventPublisher, log *zap.Logger) *AccommodationService {
	return &AccommodationService{
		accommodations: g.Accommodations,
		notifier:       newNotifier(events, log, queue.EntityAccommodation),
	}
}

func (s *AccommodationService) List(ctx context.Context) ([]dto.Accommodation, error) {
	rows, err := s.accommodations.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	return mapping.AccommodationsToDto(rows), nil
}

func (s *AccommodationService) Get(ctx context.Context, id uint64) (*dto.Accommodation, error) {
	a, err := s.accommodations.Find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get accommodation %d: %w", id, err)
	}
	out := mapping.AccommodationToDto(*a)
	return &out, nil
}

func (s *AccommodationService) Create(ctx context.Context, d dto.Accommodation) (dto.Accommodation, error) {
	a := mapping.AccommodationFromDto(d)
	a.ID = 0
	if err := s.accommodations.Insert(ctx, &a); err != nil {
		return dto.Accommodation{}, fmt.Errorf("create accommodation: %w", err)
	}
	s.notify(ctx, queue.ActionCreated, a.ID)
	return mapping.AccommodationToDto(a), nil
}

func (s *AccommodationService) Update(ctx context.Context, d dto.Accommodation) (*dto.Accommodation, error) {
	a, err := s.accommodations.Get(ctx, d.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load accommodation %d: %w", d.ID, err)
	}
	mapping.ApplyAccommodation(d, a)
	err = s.accommodations.Save(ctx, a)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil // deleted since it was loaded
	}
	if err != nil {
		return nil, fmt.Errorf("update accommodation %d: %w", d.ID, err)
	}
	s.notify(ctx, queue.ActionUpdated, a.ID)
	out := mapping.AccommodationToDto(*a)
	return &out, nil
}

// Delete returns ErrInUse while reservations reference the accommodation.
func (s *AccommodationService) Delete(ctx context.Context, id uint64) (bool, error) {
	a, err := s.accommodations.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load accommodation %d: %w", id, err)
	}
	if err := s.accommodations.Remove(ctx, a); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("delete accommodation %d: %w", id, ErrInUse)
		}
		return false, fmt.Errorf("delete accommodation %d: %w", id, err)
	}
	s.notify(ctx, queue.ActionDeleted, id)
	return true, nil
}
