package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/accommodation-reservation/internal/handler"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthz(t *testing.T) {
	rec := call(newServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestReadyz(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("database is closed") })

	serve := func(t *testing.T, h *handler.HealthHandler) (int, map[string]any) {
		e := echo.New()
		e.GET("/readyz", h.Ready)
		rec := call(e, http.MethodGet, "/readyz", "")
		return rec.Code, decode[map[string]any](t, rec)
	}

	t.Run("database only", func(t *testing.T) {
		code, body := serve(t, handler.NewHealthHandler(ok, nil))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]any{"database": "ok"}, body)
	})

	t.Run("database down", func(t *testing.T) {
		code, body := serve(t, handler.NewHealthHandler(down, nil))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "database is closed", body["database"])
	})

	t.Run("with redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })

		code, body := serve(t, handler.NewHealthHandler(ok, rdb))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body["redis"])

		mr.Close()
		code, body = serve(t, handler.NewHealthHandler(ok, rdb))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.NotEqual(t, "ok", body["redis"])
	})

	t.Run("real database", func(t *testing.T) {
		rec := call(newServer(t), http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
