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

// ReservationService reads reservations together with their user and
// accommodation, but the returned DTOs only carry the two ids.
type ReservationService struct {
	reservations *repository.Table[model.Reservation]
	notifier
}

func NewReservationService(g *repository.Gateway, events EventPublisher, log *zap.Logger) *ReservationService {
	return &ReservationService{
		reservations: g.Reservations,
		notifier:     newNotifier(events, log, queue.EntityReservation),
	}
}

func (s *ReservationService) List(ctx context.Context) ([]dto.Reservation, error) {
	rows, err := s.reservations.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return mapping.ReservationsToDto(rows), nil
}

func (s *ReservationService) Get(ctx context.Context, id uint64) (*dto.Reservation, error) {
	r, err := s.reservations.Find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	out := mapping.ReservationToDto(*r)
	return &out, nil
}

// Create returns ErrInvalidReference when d.UserID or d.AccommodationID
// has no matching row.
func (s *ReservationService) Create(ctx context.Context, d dto.Reservation) (dto.Reservation, error) {
	r := mapping.ReservationFromDto(d)
	r.ID = 0
	if err := s.reservations.Insert(ctx, &r); err != nil {
		return dto.Reservation{}, fmt.Errorf("create reservation: %w", classify(err))
	}
	s.notify(ctx, queue.ActionCreated, r.ID)
	return mapping.ReservationToDto(r), nil
}

func (s *ReservationService) Update(ctx context.Context, d dto.Reservation) (*dto.Reservation, error) {
	r, err := s.reservations.Get(ctx, d.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load reservation %d: %w", d.ID, err)
	}
	mapping.ApplyReservation(d, r)
	err = s.reservations.Save(ctx, r)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil // deleted since it was loaded
	}
	if err != nil {
		return nil, fmt.Errorf("update reservation %d: %w", d.ID, classify(err))
	}
	s.notify(ctx, queue.ActionUpdated, r.ID)
	out := mapping.ReservationToDto(*r)
	return &out, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint64) (bool, error) {
	r, err := s.reservations.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load reservation %d: %w", id, err)
	}
	if err := s.reservations.Remove(ctx, r); err != nil {
		return false, fmt.Errorf("delete reservation %d: %w", id, err)
	}
	s.notify(ctx, queue.ActionDeleted, id)
	return true, nil
}

// classify maps a foreign key failure on write to ErrInvalidReference and
// leaves other errors untouched.
func classify(err error) error {
	if repository.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}
	return err
}
