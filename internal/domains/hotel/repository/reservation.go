package repository

//go:generate go run go.uber.org/mock/mockgen -source=./reservation.go -destination=../mocks/reservation_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/shared/constant"
)

// Reservation is the append-only log of every reservation ever made.
type Reservation interface {
	Append(ctx context.Context, reservation *model.Reservation) error
	GetAll(ctx context.Context) ([]*model.Reservation, error)
	Count(ctx context.Context) (int, error)
}

type reservationRepositoryImpl struct {
	log  []*model.Reservation
	otel otel.Otel
}

func NewReservation(otel otel.Otel) Reservation {
	return &reservationRepositoryImpl{
		otel: otel,
	}
}

func (r *reservationRepositoryImpl) Append(ctx context.Context, reservation *model.Reservation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Reservation.Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("failed to append %s: %w", model.EntityReservation, err)
	}

	scope.SetReservationID(reservation.ID)

	r.log = append(r.log, reservation)

	return nil
}

func (r *reservationRepositoryImpl) GetAll(ctx context.Context) ([]*model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", model.EntityReservation, err)
	}

	return slices.Clone(r.log), nil
}

func (r *reservationRepositoryImpl) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", model.EntityReservation, err)
	}

	return len(r.log), nil
}
