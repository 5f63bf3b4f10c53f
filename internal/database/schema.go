package database

import (
	"gorm.io/gorm"

	"github.com/iliyamo/accommodation-reservation/internal/model"
)

// AutoMigrate creates the users, accommodations and reservations tables
// along with their foreign keys when they do not exist yet.  Existing
// tables only gain missing columns; nothing is dropped or rewritten.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Accommodation{}, &model.Reservation{})
}
