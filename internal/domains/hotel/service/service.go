package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

// Hotel is the registry of rooms and reservations for one console session.
// It is not safe for concurrent use.
type Hotel interface {
	AddRoom(ctx context.Context, room *model.Room) error
	FindRoomByNumber(ctx context.Context, number int) (*model.Room, error)
	ListRooms(ctx context.Context) (iter.Seq[string], error)
	Availability(ctx context.Context, rooms []*model.Room, start, end time.Time) []*model.Room
	AvailableRooms(ctx context.Context, start, end time.Time) ([]*model.Room, error)
	Reserve(ctx context.Context, guest *model.Guest, room *model.Room, start, end time.Time) (*model.Reservation, error)
	CheckIn(ctx context.Context, reservation *model.Reservation) error
	CheckOut(ctx context.Context, reservation *model.Reservation) error
	ActiveReservation(ctx context.Context, roomNumber int) (*model.Reservation, error)
	ListReservations(ctx context.Context) (iter.Seq[string], error)
}

type serviceImpl struct {
	rooms        repository.Room
	reservations repository.Reservation
	cfg          *config.Config
	otel         otel.Otel
}

func New(rooms repository.Room, reservations repository.Reservation, cfg *config.Config, otel otel.Otel) Hotel {
	return &serviceImpl{
		rooms:        rooms,
		reservations: reservations,
		cfg:          cfg,
		otel:         otel,
	}
}

func operatorFrom(ctx context.Context) string {
	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)

	return operator
}

func (s *serviceImpl) currency() string {
	if s.cfg.App.Currency == constant.Empty {
		return model.DefaultCurrency
	}

	return s.cfg.App.Currency
}

func (s *serviceImpl) AddRoom(ctx context.Context, room *model.Room) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if room == nil || room.Category == nil {
		return failure.ValidationFromString("room and room category are required") // nolint:wrapcheck
	}

	scope.SetRoomNumber(room.Number)

	if room.Status == 0 {
		room.Status = model.StatusAvailable
	}

	if room.Status != model.StatusAvailable {
		return failure.InvalidState(fmt.Sprintf("room %d must be registered as %s", room.Number, model.StatusAvailable)) // nolint:wrapcheck
	}

	if s.cfg.Hotel.UniqueRoomNumbers {
		var exist bool

		exist, err = s.rooms.Exist(ctx, room.Number)
		if err != nil {
			logger.FromContext(ctx).Error().Err(err).Msg("failed to check if room exists")

			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if exist {
			logger.FromContext(ctx).Warn().Int("room", room.Number).Msg("room number already registered")

			return failure.Conflict(fmt.Sprintf("room %d is already registered", room.Number)) // nolint:wrapcheck
		}
	}

	if err = s.rooms.Insert(ctx, room); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to add room")

		return fmt.Errorf("failed to add room: %w", err)
	}

	logger.FromContext(ctx).Info().Int("room", room.Number).Str("category", room.Category.Name()).Msg("room added")

	return nil
}

// FindRoomByNumber reports a missing room once, after the whole catalogue was scanned.
func (s *serviceImpl) FindRoomByNumber(ctx context.Context, number int) (res *model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindRoomByNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetRoomNumber(number)

	res, err = s.rooms.FindByNumber(ctx, number)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to find room")

		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	if res == nil {
		logger.FromContext(ctx).Warn().Int("room", number).Msg("room not found")

		return nil, failure.NotFound(fmt.Sprintf("room %d not found", number)) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ListRooms(ctx context.Context) (res iter.Seq[string], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	if len(rooms) == 0 {
		return nil, failure.NotFound("no rooms registered") // nolint:wrapcheck
	}

	currency := s.currency()

	return func(yield func(string) bool) {
		for _, room := range rooms {
			if !yield(room.Describe(currency)) {
				return
			}
		}
	}, nil
}

func (s *serviceImpl) Availability(ctx context.Context, rooms []*model.Room, start, end time.Time) []*model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()

	scope.SetPeriod(start, end)

	available := model.Availability(rooms, start, end)
	scope.SetAvailableRooms(len(available))

	return available
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, start, end time.Time) (res []*model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if end.Before(start) {
		return nil, failure.Validation(model.ErrInvalidPeriod) // nolint:wrapcheck
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return s.Availability(ctx, rooms, start, end), nil
}

// Reserve books an Available room. It does not consult Availability, so a
// Reserved room is rejected even when the requested period is free.
func (s *serviceImpl) Reserve(ctx context.Context, guest *model.Guest, room *model.Room, start, end time.Time) (res *model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if guest == nil || room == nil {
		return nil, failure.ValidationFromString("guest and room are required") // nolint:wrapcheck
	}

	scope.SetRoomNumber(room.Number)
	scope.SetPeriod(start, end)

	if room.Status != model.StatusAvailable {
		logger.FromContext(ctx).Warn().Int("room", room.Number).Stringer("status", room.Status).Msg("reservation rejected")

		return nil, failure.InvalidState(fmt.Sprintf("room %d is not available (status %s)", room.Number, room.Status)) // nolint:wrapcheck
	}

	operator := operatorFrom(ctx)

	res, err = model.NewReservation(guest, room, start, end, operator)
	if err != nil {
		return nil, failure.Validation(err) // nolint:wrapcheck
	}

	if err = room.Book(res); err != nil {
		return nil, failure.InvalidState(err.Error()) // nolint:wrapcheck
	}

	if err = s.reservations.Append(ctx, res); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to record reservation")

		if releaseErr := room.Release(res); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}

		return nil, fmt.Errorf("failed to record reservation: %w", err)
	}

	room.Touch(operator)

	logger.FromContext(ctx).Info().
		Str("reservation", res.ID).
		Int("room", room.Number).
		Str("guest", guest.Name).
		Msg("reservation created")

	return res, nil
}

// CheckIn marks the room Occupied. Only an active reservation is required,
// the room is not checked to be Reserved first.
func (s *serviceImpl) CheckIn(ctx context.Context, reservation *model.Reservation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if reservation == nil || reservation.Room == nil {
		return failure.ValidationFromString("reservation is required") // nolint:wrapcheck
	}

	room := reservation.Room
	previous := room.Status

	scope.SetRoomNumber(room.Number)

	if err = room.Occupy(reservation); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("reservation", reservation.ID).Msg("check-in rejected")

		return failure.InvalidState(fmt.Sprintf("reservation %s is not active on room %d", reservation.ID, room.Number)) // nolint:wrapcheck
	}

	if previous != model.StatusReserved {
		logger.FromContext(ctx).Warn().Int("room", room.Number).Stringer("previous", previous).Msg("check-in on a room that was not reserved")
	}

	room.Touch(operatorFrom(ctx))

	logger.FromContext(ctx).Info().Str("reservation", reservation.ID).Int("room", room.Number).Msg("guest checked in")

	return nil
}

// CheckOut detaches the reservation from its room. The global log keeps it.
func (s *serviceImpl) CheckOut(ctx context.Context, reservation *model.Reservation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if reservation == nil || reservation.Room == nil {
		return failure.ValidationFromString("reservation is required") // nolint:wrapcheck
	}

	room := reservation.Room
	previous := room.Status

	scope.SetRoomNumber(room.Number)

	if err = room.Release(reservation); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("reservation", reservation.ID).Msg("check-out rejected")

		return failure.InvalidState(fmt.Sprintf("reservation %s is not active on room %d", reservation.ID, room.Number)) // nolint:wrapcheck
	}

	if previous != model.StatusOccupied {
		logger.FromContext(ctx).Warn().Int("room", room.Number).Stringer("previous", previous).Msg("check-out on a room that was not occupied")
	}

	room.Touch(operatorFrom(ctx))

	logger.FromContext(ctx).Info().Str("reservation", reservation.ID).Int("room", room.Number).Stringer("status", room.Status).Msg("guest checked out")

	return nil
}

// ActiveReservation returns the first active reservation of the room.
func (s *serviceImpl) ActiveReservation(ctx context.Context, roomNumber int) (res *model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.FindRoomByNumber(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	reservations := room.Reservations()
	if len(reservations) == 0 {
		return nil, failure.NotFound(fmt.Sprintf("no reservation found for room %d", roomNumber)) // nolint:wrapcheck
	}

	return reservations[0], nil
}

func (s *serviceImpl) ListReservations(ctx context.Context) (res iter.Seq[string], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservations, err := s.reservations.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	if len(reservations) == 0 {
		return nil, failure.NotFound("no reservations registered") // nolint:wrapcheck
	}

	return func(yield func(string) bool) {
		for _, reservation := range reservations {
			if !yield(reservation.String()) {
				return
			}
		}
	}, nil
}
