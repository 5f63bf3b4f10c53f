package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/accommodation-reservation/internal/handler"
)

// RegisterRoutes registers the probe endpoints.  /healthz only proves the
// process is serving; /readyz also checks the database and Redis.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", h.Ready)
}

// RegisterAPI registers the CRUD endpoints under /api.  Any middleware
// passed in (the rate limiter, for instance) applies to the whole group.
// GET-by-id routes are named so create handlers can build Location headers.
func RegisterAPI(
	e *echo.Echo,
	users *handler.UserHandler,
	accommodations *handler.AccommodationHandler,
	reservations *handler.ReservationHandler,
	mw ...echo.MiddlewareFunc,
) {
	api := e.Group("/api", mw...)

	u := api.Group("/users")
	u.GET("", users.List)
	u.GET("/:id", users.Get).Name = handler.RouteUser
	u.POST("", users.Create)
	u.PUT("/:id", users.Update)
	u.DELETE("/:id", users.Delete)

	a := api.Group("/accommodations")
	a.GET("", accommodations.List)
	a.GET("/:id", accommodations.Get).Name = handler.RouteAccommodation
	a.POST("", accommodations.Create)
	a.PUT("/:id", accommodations.Update)
	a.DELETE("/:id", accommodations.Delete)

	r := api.Group("/reservations")
	r.GET("", reservations.List)
	r.GET("/:id", reservations.Get).Name = handler.RouteReservation
	r.POST("", reservations.Create)
	r.PUT("/:id", reservations.Update)
	r.DELETE("/:id", reservations.Delete)
}
