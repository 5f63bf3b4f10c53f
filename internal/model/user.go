package model

// User represents a row in the `users` table.  A user may hold any
// number of reservations; the relation is a back-reference only and is
// never loaded by the API.
//
// Fields:
//  ID           – primary key identifier, assigned by the store.
//  Name         – display name.
//  Email        – contact address (not unique).
//  Reservations – reservations referencing this user.
type User struct {
	ID           uint64        `gorm:"primaryKey"`                                                      // users.id
	Name         string        `gorm:"size:255;not null"`                                               // users.name
	Email        string        `gorm:"size:255;not null"`                                               // users.email
	Reservations []Reservation `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"` // reservations.user_id
}
