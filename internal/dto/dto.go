// Package dto defines the JSON shapes exchanged over the HTTP API.  They are
// decoupled from the storage models in package model; package mapping
// converts between the two.
//
// Importing dto sets decimal.MarshalJSONWithoutQuotes for the whole
// process, so every decimal.Decimal (pricePerNight included) is encoded as
// a JSON number rather than a quoted string.
package dto

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// User is the wire form of a user.
type User struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Accommodation is the wire form of an accommodation.
type Accommodation struct {
	ID            uint64          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
}

// Reservation is the wire form of a reservation.  It carries only the
// foreign key scalars, never the related user or accommodation.
type Reservation struct {
	ID              uint64   `json:"id"`
	UserID          uint64   `json:"userId"`
	AccommodationID uint64   `json:"accommodationId"`
	StartDate       DateTime `json:"startDate"`
	EndDate         DateTime `json:"endDate"`
}
