package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/accommodation-reservation/internal/dto"
	"github.com/iliyamo/accommodation-reservation/internal/service"
)

// UserService is the behaviour UserHandler needs; *service.UserService
// implements it.
type UserService interface {
	List(ctx context.Context) ([]dto.User, error)
	Get(ctx context.Context, id uint64) (*dto.User, error)
	Create(ctx context.Context, d dto.User) (dto.User, error)
	Update(ctx context.Context, d dto.User) (*dto.User, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// UserHandler serves /api/users.
type UserHandler struct {
	Users UserService
}

// NewUserHandler panics if s is nil.
func NewUserHandler(s UserService) *UserHandler {
	if s == nil {
		panic("nil service passed to NewUserHandler")
	}
	return &UserHandler{Users: s}
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid user id.")
	}
	user, err := h.Users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return message(c, http.StatusNotFound, "User not found.")
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users.  Name and email are required.
func (h *UserHandler) Create(c echo.Context) error {
	body, err := bindBody[dto.User](c)
	if err != nil {
		return err
	}
	if body == nil || body.Name == "" || body.Email == "" {
		return message(c, http.StatusBadRequest, "Invalid user data.")
	}
	user, err := h.Users.Create(c.Request().Context(), *body)
	if err != nil {
		return err
	}
	return created(c, RouteUser, user.ID, user)
}

// Update handles PUT /api/users/:id.  The body id must match the path id.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid user id.")
	}
	body, err := bindBody[dto.User](c)
	if err != nil {
		return err
	}
	if body == nil {
		return message(c, http.StatusBadRequest, "Invalid user data.")
	}
	if body.ID != id {
		return message(c, http.StatusBadRequest, "User ID mismatch.")
	}
	user, err := h.Users.Update(c.Request().Context(), *body)
	if err != nil {
		return err
	}
	if user == nil {
		return message(c, http.StatusNotFound, "User not found.")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id.  A user with reservations is kept
// and 409 is returned.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return message(c, http.StatusBadRequest, "Invalid user id.")
	}
	deleted, err := h.Users.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrInUse) {
		return message(c, http.StatusConflict, "User has reservations.")
	}
	if err != nil {
		return err
	}
	if !deleted {
		return message(c, http.StatusNotFound, "User not found.")
	}
	return c.NoContent(http.StatusNoContent)
}
