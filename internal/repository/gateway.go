package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iliyamo/accommodation-reservation/internal/model"
)

// Gateway exposes one Table per entity over a single connection pool.
// Reservations are always read together with their user and
// accommodation.
type Gateway struct {
	db             *gorm.DB
	Users          *Table[model.User]
	Accommodations *Table[model.Accommodation]
	Reservations   *Table[model.Reservation]
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{
		db:             db,
		Users:          NewTable[model.User](db),
		Accommodations: NewTable[model.Accommodation](db),
		Reservations:   NewTable[model.Reservation](db, "User", "Accommodation"),
	}
}

// Ping verifies the database is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
