package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/accommodation-reservation/internal/dto"
	"github.com/iliyamo/accommodation-reservation/internal/service"
)

type AccommodationService interface {
	List(ctx context.Context) ([]dto.Accommodation, error)
	Get(ctx context.Context, id uint64) (*dto.Accommodation, error)
	Create(ctx context.Context, d dto.Accommodation) (dto.Accommodation, error)
	Update(ctx context.Context, d dto.Accommodation) (*dto.Accommodation, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// AccommodationHandler serves /api/accommodations.
type AccommodationHandler struct {
	Accommodations AccommodationService
}

func NewAccommodationHandler(s AccommodationService) *AccommodationHandler {
	if s == nil {
		panic("nil service passed to NewAccommodationHandler")
	}
	return &AccommodationHandler{Accommodations: s}
}

func (h *AccommodationHandler) List(c echo.Context) error {
	items, err := h.Accommodations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AccommodationHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid accommodation id.")
	}
	item, err := h.Accommodations.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if item == nil {
		return message(c, http.StatusNotFound, "Accommodation not found.")
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/accommodations.  Only the name is required.
func (h *AccommodationHandler) Create(c echo.Context) error {
	body, err := bindBody[dto.Accommodation](c)
	if err != nil {
		return err
	}
	if body == nil || body.Name == "" {
		return message(c, http.StatusBadRequest, "Invalid accommodation data.")
	}
	item, err := h.Accommodations.Create(c.Request().Context(), *body)
	if err != nil {
		return err
	}
	return created(c, RouteAccommodation, item.ID, item)
}

func (h *AccommodationHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid accommodation id.")
	}
	body, err := bindBody[dto.Accommodation](c)
	if err != nil {
		return err
	}
	if body == nil {
		return message(c, http.StatusBadRequest, "Invalid accommodation data.")
	}
	if body.ID != id {
		return message(c, http.StatusBadRequest, "Accommodation ID mismatch.")
	}
	item, err := h.Accommodations.Update(c.Request().Context(), *body)
	if err != nil {
		return err
	}
	if item == nil {
		return message(c, http.StatusNotFound, "Accommodation not found.")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AccommodationHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid accommodation id.")
	}
	deleted, err := h.Accommodations.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrInUse) {
		return message(c, http.StatusConflict, "Accommodation has reservations.")
	}
	if err != nil {
		return err
	}
	if !deleted {
		return message(c, http.StatusNotFound, "Accommodation not found.")
	}
	return c.NoContent(http.StatusNoContent)
}
