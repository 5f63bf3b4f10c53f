package model

import "github.com/shopspring/decimal"

// Accommodation represents a row in the `accommodations` table: a place
// that can be booked per night.
//
// Fields:
//  ID            – primary key identifier, assigned by the store.
//  Name          – display name.
//  Location      – free-form address or city.
//  PricePerNight – nightly price; negative values are not rejected.
//  Reservations  – reservations referencing this accommodation.
type Accommodation struct {
	ID            uint64          `gorm:"primaryKey"`                                                               // accommodations.id
	Name          string          `gorm:"size:255;not null"`                                                        // accommodations.name
	Location      string          `gorm:"size:255;not null"`                                                        // accommodations.location
	PricePerNight decimal.Decimal `gorm:"type:decimal(18,2);not null"`                                              // accommodations.price_per_night
	Reservations  []Reservation   `gorm:"foreignKey:AccommodationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // reservations.accommodation_id
}
