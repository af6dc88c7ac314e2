package repository

//go:generate go run go.uber.org/mock/mockgen -source=./room.go -destination=../mocks/room_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/shared/constant"
)

// Room is the room catalogue, kept in insertion order.
type Room interface {
	Insert(ctx context.Context, room *model.Room) error
	FindByNumber(ctx context.Context, number int) (*model.Room, error)
	Exist(ctx context.Context, number int) (bool, error)
	GetAll(ctx context.Context) ([]*model.Room, error)
	Count(ctx context.Context) (int, error)
}

type roomRepositoryImpl struct {
	rooms []*model.Room
	otel  otel.Otel
}

func NewRoom(otel otel.Otel) Room {
	return &roomRepositoryImpl{
		otel: otel,
	}
}

func (r *roomRepositoryImpl) Insert(ctx context.Context, room *model.Room) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("failed to insert %s: %w", model.EntityRoom, err)
	}

	scope.SetRoomNumber(room.Number)

	r.rooms = append(r.rooms, room)

	return nil
}

// FindByNumber scans the whole catalogue and returns the first room with the
// given number, or nil when there is none.
func (r *roomRepositoryImpl) FindByNumber(ctx context.Context, number int) (res *model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.FindByNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", model.EntityRoom, err)
	}

	scope.SetRoomNumber(number)

	index := slices.IndexFunc(r.rooms, func(room *model.Room) bool {
		return room.Number == number
	})
	if index < 0 {
		return nil, nil
	}

	return r.rooms[index], nil
}

func (r *roomRepositoryImpl) Exist(ctx context.Context, number int) (bool, error) {
	room, err := r.FindByNumber(ctx, number)
	if err != nil {
		return false, err
	}

	return room != nil, nil
}

// GetAll returns a snapshot of the catalogue; the rooms themselves are shared.
func (r *roomRepositoryImpl) GetAll(ctx context.Context) ([]*model.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", model.EntityRoom, err)
	}

	return slices.Clone(r.rooms), nil
}

func (r *roomRepositoryImpl) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", model.EntityRoom, err)
	}

	return len(r.rooms), nil
}
