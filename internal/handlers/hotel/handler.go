package hotel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/console/menu"
	"hotel/transport/console/request"
	"hotel/transport/console/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Hotel, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(m *menu.Menu) {
	m.Handle("1", "Add room", handler.AddRoom)
	m.Handle("2", "List rooms", handler.ListRooms)
	m.Handle("3", "Find room by number", handler.FindRoom)
	m.Handle("4", "Make reservation", handler.MakeReservation)
	m.Handle("5", "List reservations", handler.ListReservations)
	m.Handle("6", "Check-in", handler.CheckIn)
	m.Handle("7", "Check-out", handler.CheckOut)
	m.Handle("8", "Available rooms for a period", handler.AvailableRooms)
}

// AddRoom asks for category, number, price and, unless the room is single,
// the bed type.
func (handler *Handler) AddRoom(req *request.Request, res *response.Writer) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	res.WithTitle("Add Room")

	var (
		input dto.CreateRoomRequest
		err   error
	)

	input.Category, err = request.AskValid(req, "Room category (single, double, triple): ", choice("Category", "single double triple"))
	if err != nil {
		handler.fail(scope, res, err, "failed to read room category")

		return
	}

	input.Number, err = request.AskValid(req, "Room number: ", shared.ConvertStringToInt)
	if err != nil {
		handler.fail(scope, res, err, "failed to read room number")

		return
	}

	input.Price, err = request.AskValid(req, "Room price: ", price)
	if err != nil {
		handler.fail(scope, res, err, "failed to read room price")

		return
	}

	if input.Category != "single" {
		input.BedType, err = request.AskValid(req, "Bed type (single, double): ", choice("Bed type", "single double"))
		if err != nil {
			handler.fail(scope, res, err, "failed to read bed type")

			return
		}
	}

	room, err := input.ToModel(operatorFrom(ctx))
	if err != nil {
		handler.fail(scope, res, err, "failed to validate room")

		return
	}

	if err = handler.service.AddRoom(ctx, room); err != nil {
		handler.fail(scope, res, err, "failed to add room")

		return
	}

	res.WithMessage(fmt.Sprintf("Room %d added.", room.Number))
}

func (handler *Handler) ListRooms(req *request.Request, res *response.Writer) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRooms")
	defer scope.End()

	res.WithTitle("Room List")

	rooms, err := handler.service.ListRooms(ctx)
	if err != nil {
		handler.fail(scope, res, err, "failed to list rooms")

		return
	}

	res.WithLines(rooms)
}

func (handler *Handler) FindRoom(req *request.Request, res *response.Writer) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindRoom")
	defer scope.End()

	res.WithTitle("Find Room")

	number, err := request.AskValid(req, "Room number: ", shared.ConvertStringToInt)
	if err != nil {
		handler.fail(scope, res, err, "failed to read room number")

		return
	}

	room, err := handler.service.FindRoomByNumber(ctx, number)
	if err != nil {
		handler.fail(scope, res, err, "failed to find room")

		return
	}

	res.WithMessage(room.Describe(handler.currency()))
}

// MakeReservation collects the guest and the room. The period is only asked
// for once the room exists.
func (handler *Handler) MakeReservation(req *request.Request, res *response.Writer) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MakeReservation")
	defer scope.End()

	res.WithTitle("Make Reservation")

	guest, err := handler.askGuest(req)
	if err != nil {
		handler.fail(scope, res, err, "failed to read guest")

		return
	}

	number, err := request.AskValid(req, "Room number: ", shared.ConvertStringToInt)
	if err != nil {
		handler.fail(scope, res, err, "failed to read room number")

		return
	}

	room, err := handler.service.FindRoomByNumber(ctx, number)
	if err != nil {
		handler.fail(scope, res, err, "failed to find room")

		return
	}

	start, end, err := handler.askPeriod(req, res)
	if err != nil {
		handler.fail(scope, res, err, "failed to read reservation period")

		return
	}

	reservation, err := handler.service.Reserve(ctx, guest, room, start, end)
	if err != nil {
		handler.fail(scope, res, err, "failed to make reservation")

		return
	}

	scope.AddEvent("Reservation " + reservation.ID + " created by " + operatorFrom(ctx))

	res.WithMessage(fmt.Sprintf("Reservation made for room %d.", reservation.Room.Number))
}

func (handler *Handler) ListReservations(req *request.Request, res *response.Writer) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReservations")
	defer scope.End()

	res.WithTitle("Reservation List")

	reservations, err := handler.service.ListReservations(ctx)
	if err != nil {
		handler.fail(scope, res, err, "failed to list reservations")

		return
	}

	res.WithLines(reservations)
}

func (handler *Handler) CheckIn(req *request.Request, res *response.Writer) {
	handler.check(req, res, "Check-in", handler.service.CheckIn)
}

func (handler *Handler) CheckOut(req *request.Request, res *response.Writer) {
	handler.check(req, res, "Check-out", handler.service.CheckOut)
}

// check resolves the first active reservation of the room typed by the
// operator and applies transition to it.
func (handler *Handler) check(
	req *request.Request,
	res *response.Writer,
	name string,
	transition func(ctx context.Context, reservation *model.Reservation) error,
) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	res.WithTitle(name)

	number, err := request.AskValid(req, "Room number: ", shared.ConvertStringToInt)
	if err != nil {
		handler.fail(scope, res, err, "failed to read room number")

		return
	}

	scope.SetRoomNumber(number)

	reservation, err := handler.service.ActiveReservation(ctx, number)
	if err != nil {
		handler.fail(scope, res, err, "failed to find active reservation")

		return
	}

	if err = transition(ctx, reservation); err != nil {
		handler.fail(scope, res, err, strings.ToLower(name)+" failed")

		return
	}

	res.WithMessage(fmt.Sprintf("%s completed for room %d.", name, number))
}

func (handler *Handler) AvailableRooms(req *request.Request, res *response.Writer) {
	ctx, scope := handler.otel.NewScope(req.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableRooms")
	defer scope.End()

	res.WithTitle("Available Rooms")

	start, end, err := handler.askPeriod(req, res)
	if err != nil {
		handler.fail(scope, res, err, "failed to read period")

		return
	}

	rooms, err := handler.service.AvailableRooms(ctx, start, end)
	if err != nil {
		handler.fail(scope, res, err, "failed to list available rooms")

		return
	}

	if len(rooms) == 0 {
		res.WithMessage("No rooms available for the period.")

		return
	}

	res.WithLines(describe(rooms, handler.currency()))
}

func (handler *Handler) askGuest(req *request.Request) (*model.Guest, error) {
	var (
		input dto.CreateGuestRequest
		err   error
	)

	input.Name, err = request.AskValid(req, "Guest name: ", field("Name", "required,alphaspace"))
	if err != nil {
		return nil, err
	}

	input.NationalID, err = request.AskValid(req, "Guest national ID (digits only): ", field("National ID", "required,len=11,numeric"))
	if err != nil {
		return nil, err
	}

	input.Contact, err = request.AskValid(req, "Guest contact: ", field("Contact", "required,numeric"))
	if err != nil {
		return nil, err
	}

	input.BirthDate, err = request.AskValid(req, "Guest birth date (dd/mm/yyyy): ", field("Birth date", "required,birthdate"))
	if err != nil {
		return nil, err
	}

	return input.ToModel()
}

// askPeriod asks for both dates again when the end precedes the start.
func (handler *Handler) askPeriod(req *request.Request, res *response.Writer) (start, end time.Time, err error) {
	for range max(handler.cfg.Console.MaxAttempts, 1) {
		var input dto.PeriodRequest

		input.StartDate, err = request.AskValid(req, "Start date (dd/mm/yyyy): ", field("Start date", "required,date"))
		if err != nil {
			return start, end, err
		}

		input.EndDate, err = request.AskValid(req, "End date (dd/mm/yyyy): ", field("End date", "required,date"))
		if err != nil {
			return start, end, err
		}

		start, end, err = input.Parse()
		if err == nil {
			return start, end, nil
		}

		res.WithError(err)
	}

	return start, end, failure.AttemptsExhausted
}

func (handler *Handler) currency() string {
	if handler.cfg.App.Currency == constant.Empty {
		return model.DefaultCurrency
	}

	return handler.cfg.App.Currency
}

// fail reports err to the operator. An exhausted input or an interrupted
// session ends the interaction without a message.
func (handler *Handler) fail(scope otel.Scope, res *response.Writer, err error, msg string) {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return
	}

	scope.TraceError(err)

	if failure.GetCode(err) == failure.CodeInternal {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	res.WithError(err)
}

func operatorFrom(ctx context.Context) string {
	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)

	return operator
}

func choice(name, options string) func(string) (string, error) {
	return func(answer string) (string, error) {
		answer = strings.ToLower(answer)

		return answer, validator.ValidateField(name, answer, "required,oneof="+options)
	}
}

func field(name, tag string) func(string) (string, error) {
	return func(answer string) (string, error) {
		return answer, validator.ValidateField(name, answer, tag)
	}
}

func price(answer string) (float64, error) {
	value, err := shared.ConvertStringToFloat(answer)
	if err != nil {
		return 0, err
	}

	return value, validator.ValidateField("Price", value, "gt=0")
}

func describe(rooms []*model.Room, currency string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, room := range rooms {
			if !yield(room.Describe(currency)) {
				return
			}
		}
	}
}
