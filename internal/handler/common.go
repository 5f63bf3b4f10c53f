package handler // handler defines http handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Route names used to build Location headers for created resources.
const (
	RouteUser          = "users.get"
	RouteAccommodation = "accommodations.get"
	RouteReservation   = "reservations.get"
)

// parseID reads the :id path parameter.  Any unsigned integer is accepted;
// ids the store never assigns (zero, or beyond its key range) are simply
// not found.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindBody decodes a JSON body into a *T.  An empty body or a literal null
// yields a nil pointer and no error; malformed JSON and unsupported media
// types come back as *echo.HTTPError.
func bindBody[T any](c echo.Context) (*T, error) {
	var body *T
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// message writes {"message": msg} with the given status.
func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

// created writes a 201 with a Location header pointing at the named route.
func created(c echo.Context, route string, id uint64, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(route, id))
	return c.JSON(http.StatusCreated, body)
}
