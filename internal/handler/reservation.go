package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/accommodation-reservation/internal/dto"
	"github.com/iliyamo/accommodation-reservation/internal/service"
)

type ReservationService interface {
	List(ctx context.Context) ([]dto.Reservation, error)
	Get(ctx context.Context, id uint64) (*dto.Reservation, error)
	Create(ctx context.Context, d dto.Reservation) (dto.Reservation, error)
	Update(ctx context.Context, d dto.Reservation) (*dto.Reservation, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// ReservationHandler serves /api/reservations.  Writes that point at a
// missing user or accommodation are answered with 400.
type ReservationHandler struct {
	Reservations ReservationService
}

func NewReservationHandler(s ReservationService) *ReservationHandler {
	if s == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: s}
}

func (h *ReservationHandler) List(c echo.Context) error {
	items, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid reservation id.")
	}
	item, err := h.Reservations.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if item == nil {
		return message(c, http.StatusNotFound, "Reservation not found.")
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/reservations.  Both userId and accommodationId
// must be non-zero.
func (h *ReservationHandler) Create(c echo.Context) error {
	body, err := bindBody[dto.Reservation](c)
	if err != nil {
		return err
	}
	if body == nil || body.UserID == 0 || body.AccommodationID == 0 {
		return message(c, http.StatusBadRequest, "Invalid reservation data.")
	}
	item, err := h.Reservations.Create(c.Request().Context(), *body)
	if errors.Is(err, service.ErrInvalidReference) {
		return message(c, http.StatusBadRequest, "User or accommodation does not exist.")
	}
	if err != nil {
		return err
	}
	return created(c, RouteReservation, item.ID, item)
}

func (h *ReservationHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid reservation id.")
	}
	body, err := bindBody[dto.Reservation](c)
	if err != nil {
		return err
	}
	if body == nil {
		return message(c, http.StatusBadRequest, "Invalid reservation data.")
	}
	if body.ID != id {
		return message(c, http.StatusBadRequest, "Reservation ID mismatch.")
	}
	item, err := h.Reservations.Update(c.Request().Context(), *body)
	if errors.Is(err, service.ErrInvalidReference) {
		return message(c, http.StatusBadRequest, "User or accommodation does not exist.")
	}
	if err != nil {
		return err
	}
	if item == nil {
		return message(c, http.StatusNotFound, "Reservation not found.")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid reservation id.")
	}
	deleted, err := h.Reservations.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return message(c, http.StatusNotFound, "Reservation not found.")
	}
	return c.NoContent(http.StatusNoContent)
}
