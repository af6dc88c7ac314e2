package model

import "errors"

// Sentinel errors of the room state machine. The service layer turns them
// into failure.InvalidState.
var (
	ErrRoomNotAvailable     = errors.New("room is not available")
	ErrReservationNotActive = errors.New("reservation is not active on its room")
	ErrInvalidPeriod        = errors.New("end date cannot be before start date")
)
