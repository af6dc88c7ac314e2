package otel

import (
	"time"

	"hotel/shared/constant"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	roomNumberKey     = attribute.Key("room.number")
	availableRoomsKey = attribute.Key("rooms.available")
	startDateKey      = attribute.Key("reservation.start_date")
	endDateKey        = attribute.Key("reservation.end_date")
	reservationIDKey  = attribute.Key("reservation.id")
	menuOptionKey     = attribute.Key("menu.option")
)

// Scope is one traced unit of work. Hotel attributes are set through typed
// setters so every span uses the same keys.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetRoomNumber(number int)
	SetAvailableRooms(count int)
	SetPeriod(start, end time.Time)
	SetReservationID(id string)
	SetMenuOption(option string)
}

type spanScope struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &spanScope{span: span}
}

func (s *spanScope) End() {
	s.span.End()
}

func (s *spanScope) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *spanScope) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.TraceError(err)
}

func (s *spanScope) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *spanScope) SetRoomNumber(number int) {
	s.span.SetAttributes(roomNumberKey.Int(number))
}

func (s *spanScope) SetAvailableRooms(count int) {
	s.span.SetAttributes(availableRoomsKey.Int(count))
}

// SetPeriod records both dates in the dd/mm/yyyy layout the operator typed.
func (s *spanScope) SetPeriod(start, end time.Time) {
	s.span.SetAttributes(
		startDateKey.String(start.Format(constant.DateFormat)),
		endDateKey.String(end.Format(constant.DateFormat)),
	)
}

func (s *spanScope) SetReservationID(id string) {
	s.span.SetAttributes(reservationIDKey.String(id))
}

func (s *spanScope) SetMenuOption(option string) {
	s.span.SetAttributes(menuOptionKey.String(option))
}
