package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/accommodation-reservation/internal/config"
	"github.com/iliyamo/accommodation-reservation/internal/database"
	"github.com/iliyamo/accommodation-reservation/internal/handler"
	"github.com/iliyamo/accommodation-reservation/internal/logger"
	"github.com/iliyamo/accommodation-reservation/internal/middleware"
	"github.com/iliyamo/accommodation-reservation/internal/queue"
	"github.com/iliyamo/accommodation-reservation/internal/repository"
	"github.com/iliyamo/accommodation-reservation/internal/router"
	"github.com/iliyamo/accommodation-reservation/internal/service"
)

func main() {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			lg.Warn("close database", zap.Error(err))
		}
	}()
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
	}
	gw := repository.NewGateway(db)

	// Entity events are optional.  Without a broker every write still
	// succeeds; events are simply not emitted.
	var events service.EventPublisher = queue.NopPublisher{}
	if cfg.Events.Enabled {
		events = queue.NewPublisher(cfg.Events.URL, cfg.Events.Queue)
		if cfg.Events.Consumer {
			c := queue.NewConsumer(cfg.Events.URL, cfg.Events.Queue, cfg.Events.LogPath, lg.Named("events"))
			go func() {
				if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					lg.Error("event consumer stopped", zap.Error(err))
				}
			}()
		}
	}

	// Redis backs the rate limiter only.  When it is unreachable the
	// limiter lets everything through.
	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		rdb = config.NewRedisClient(cfg.Redis)
		if rdb == nil {
			lg.Warn("redis unreachable, rate limiting disabled", zap.String("addr", cfg.Redis.Addr))
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(lg)
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(lg))
	e.Use(echomw.Recover())

	router.RegisterRoutes(e, handler.NewHealthHandler(gw, rdb))
	router.RegisterAPI(e,
		handler.NewUserHandler(service.NewUserService(gw, events, lg)),
		handler.NewAccommodationHandler(service.NewAccommodationService(gw, events, lg)),
		handler.NewReservationHandler(service.NewReservationService(gw, events, lg)),
		middleware.NewTokenBucket(cfg.RateLimit, rdb, lg),
	)

	addr := ":" + cfg.Port // Address string with port
	errCh := make(chan error, 1)
	go func() {
		lg.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
