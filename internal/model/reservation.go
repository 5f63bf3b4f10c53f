package model

import "time"

// Reservation records a user's stay at an accommodation.  Both foreign
// keys are required and enforced by the store; deleting a referenced
// user or accommodation is restricted while reservations exist.
//
// Fields:
//  ID              – primary key identifier, assigned by the store.
//  UserID          – user holding the reservation.
//  User            – eager-loaded user row.
//  AccommodationID – accommodation being reserved.
//  Accommodation   – eager-loaded accommodation row.
//  StartDate       – first day of the stay.
//  EndDate         – last day of the stay; ordering against StartDate is
//                    not enforced.
type Reservation struct {
	ID              uint64        `gorm:"primaryKey"`                                                               // reservations.id
	UserID          uint64        `gorm:"not null;index"`                                                           // reservations.user_id
	User            User          `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`          // users row
	AccommodationID uint64        `gorm:"not null;index"`                                                           // reservations.accommodation_id
	Accommodation   Accommodation `gorm:"foreignKey:AccommodationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // accommodations row
	StartDate       time.Time     `gorm:"not null"`                                                                 // reservations.start_date
	EndDate         time.Time     `gorm:"not null"`                                                                 // reservations.end_date
}
