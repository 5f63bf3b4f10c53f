// Package mapping copies fields between storage models and wire DTOs.
// Every pair has three functions: entity to DTO, DTO to a new entity, and
// DTO onto an existing entity.  The last one never touches the identity,
// so an update cannot re-key a row.
package mapping

import (
	"github.com/iliyamo/accommodation-reservation/internal/dto"
	"github.com/iliyamo/accommodation-reservation/internal/model"
)

func UserToDto(u model.User) dto.User {
	return dto.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func UserFromDto(d dto.User) model.User {
	return model.User{ID: d.ID, Name: d.Name, Email: d.Email}
}

func ApplyUser(d dto.User, u *model.User) {
	u.Name = d.Name
	u.Email = d.Email
}

// UsersToDto never returns nil so an empty table encodes as [].
func UsersToDto(rows []model.User) []dto.User {
	out := make([]dto.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, UserToDto(r))
	}
	return out
}

func AccommodationToDto(a model.Accommodation) dto.Accommodation {
	return dto.Accommodation{
		ID:            a.ID,
		Name:          a.Name,
		Location:      a.Location,
		PricePerNight: a.PricePerNight,
	}
}

func AccommodationFromDto(d dto.Accommodation) model.Accommodation {
	return model.Accommodation{
		ID:            d.ID,
		Name:          d.Name,
		Location:      d.Location,
		PricePerNight: d.PricePerNight,
	}
}

func ApplyAccommodation(d dto.Accommodation, a *model.Accommodation) {
	a.Name = d.Name
	a.Location = d.Location
	a.PricePerNight = d.PricePerNight
}

func AccommodationsToDto(rows []model.Accommodation) []dto.Accommodation {
	out := make([]dto.Accommodation, 0, len(rows))
	for _, r := range rows {
		out = append(out, AccommodationToDto(r))
	}
	return out
}

// ReservationToDto ignores the eager-loaded User and Accommodation.
func ReservationToDto(r model.Reservation) dto.Reservation {
	return dto.Reservation{
		ID:              r.ID,
		UserID:          r.UserID,
		AccommodationID: r.AccommodationID,
		StartDate:       dto.NewDateTime(r.StartDate.UTC()),
		EndDate:         dto.NewDateTime(r.EndDate.UTC()),
	}
}

func ReservationFromDto(d dto.Reservation) model.Reservation {
	return model.Reservation{
		ID:              d.ID,
		UserID:          d.UserID,
		AccommodationID: d.AccommodationID,
		StartDate:       d.StartDate.UTC(),
		EndDate:         d.EndDate.UTC(),
	}
}

func ApplyReservation(d dto.Reservation, r *model.Reservation) {
	r.UserID = d.UserID
	r.AccommodationID = d.AccommodationID
	r.StartDate = d.StartDate.UTC()
	r.EndDate = d.EndDate.UTC()
}

func ReservationsToDto(rows []model.Reservation) []dto.Reservation {
	out := make([]dto.Reservation, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReservationToDto(r))
	}
	return out
}
