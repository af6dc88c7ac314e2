package model

import (
	"fmt"
	"time"

	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

const EntityReservation = "reservation"

// Reservation binds one guest to one room for [StartDate, EndDate]. The guest
// is owned by the reservation, the room is only referenced.
type Reservation struct {
	ID        string
	Guest     *Guest
	Room      *Room
	StartDate time.Time
	EndDate   time.Time
	model.Metadata
}

func NewReservation(guest *Guest, room *Room, start, end time.Time, operator string) (*Reservation, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	return &Reservation{
		ID:        uuid.NewString(),
		Guest:     guest,
		Room:      room,
		StartDate: start,
		EndDate:   end,
		Metadata:  model.NewMetadata(operator),
	}, nil
}

// Overlaps reports whether [start, end] shares at least one day with the reservation.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return !(end.Before(r.StartDate) || start.After(r.EndDate))
}

// Active reports whether the reservation is still attached to its room.
func (r *Reservation) Active() bool {
	return r.Room != nil && r.Room.HasActive(r)
}

func (r *Reservation) String() string {
	guestName, roomNumber := "", 0
	if r.Guest != nil {
		guestName = r.Guest.Name
	}
	if r.Room != nil {
		roomNumber = r.Room.Number
	}

	return fmt.Sprintf("Guest: %s | Room: %d | From: %s to %s",
		guestName, roomNumber, timezone.FormatDate(r.StartDate), timezone.FormatDate(r.EndDate))
}
