package model

import "time"

// Availability returns the rooms a new reservation for [start, end] could use,
// in the order given. Available rooms always qualify, Reserved rooms only when
// none of their active reservations overlaps the period, Occupied rooms never.
// Nil entries are skipped.
func Availability(rooms []*Room, start, end time.Time) []*Room {
	available := make([]*Room, 0, len(rooms))

	for _, room := range rooms {
		if room == nil {
			continue
		}

		switch room.Status {
		case StatusAvailable:
			available = append(available, room)
		case StatusReserved:
			if freeDuring(room, start, end) {
				available = append(available, room)
			}
		}
	}

	return available
}

func freeDuring(room *Room, start, end time.Time) bool {
	for _, reservation := range room.reservations {
		if reservation.Overlaps(start, end) {
			return false
		}
	}

	return true
}
