package mocks

import (
	"time"

	"hotel/infras/otel"
)

// noopScope records nothing. Tests use it where spans are irrelevant.
type noopScope struct{}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetRoomNumber(int) {}
func (noopScope) SetAvailableRooms(int) {}
func (noopScope) SetPeriod(_, _ time.Time) {}
func (noopScope) SetReservationID(string) {}
func (noopScope) SetMenuOption(string) {}
