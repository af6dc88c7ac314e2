package model

import (
	"fmt"
	"slices"
	"strings"

	"hotel/shared/constant"
	"hotel/shared/model"
)

const (
	EntityRoom = "room"

	DefaultCurrency = "R$"
)

// BedType is the bed arrangement of a Double or Triple room.
type BedType int

const (
	SingleBed BedType = iota + 1
	DoubleBed
)

func (b BedType) String() string {
	switch b {
	case SingleBed:
		return "Single-bed"
	case DoubleBed:
		return "Double-bed"
	default:
		return "Unknown-bed"
	}
}

// ParseBedType accepts "single", "double" or the rendered names, in any case.
func ParseBedType(value string) (BedType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "single", "single-bed":
		return SingleBed, true
	case "double", "double-bed":
		return DoubleBed, true
	default:
		return 0, false
	}
}

// Category is one of Single, Double or Triple. Only Double and Triple carry a bed type.
type Category interface {
	Name() string
	isCategory()
}

type Single struct{}

type Double struct {
	Bed BedType
}

type Triple struct {
	Bed BedType
}

func (Single) Name() string { return "Single" }
func (Double) Name() string { return "Double" }
func (Triple) Name() string { return "Triple" }

func (Single) isCategory() {}
func (Double) isCategory() {}
func (Triple) isCategory() {}

// BedTypeOf returns the bed type of c and false for categories without one.
func BedTypeOf(c Category) (BedType, bool) {
	switch category := c.(type) {
	case Double:
		return category.Bed, true
	case Triple:
		return category.Bed, true
	default:
		return 0, false
	}
}

// NewCategory builds a category from its name. bed is ignored for Single.
func NewCategory(name string, bed BedType) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single":
		return Single{}, true
	case "double":
		return Double{Bed: bed}, true
	case "triple":
		return Triple{Bed: bed}, true
	default:
		return nil, false
	}
}

type Status int

const (
	StatusAvailable Status = iota + 1
	StatusReserved
	StatusOccupied
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	case StatusOccupied:
		return "Occupied"
	default:
		return "Unknown"
	}
}

func ParseStatus(value string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "available":
		return StatusAvailable, true
	case "reserved":
		return StatusReserved, true
	case "occupied":
		return StatusOccupied, true
	default:
		return 0, false
	}
}

// Room is a cataloged unit. Its status only changes through Book, Occupy and
// Release, which keep it consistent with the active reservation list.
type Room struct {
	Number   int
	Category Category
	Price    float64
	Status   Status

	reservations []*Reservation
	model.Metadata
}

func NewRoom(number int, category Category, price float64) *Room {
	return &Room{
		Number:   number,
		Category: category,
		Price:    price,
		Status:   StatusAvailable,
	}
}

// Reservations returns a copy of the active reservations in booking order.
func (r *Room) Reservations() []*Reservation {
	return slices.Clone(r.reservations)
}

func (r *Room) HasActive(reservation *Reservation) bool {
	return slices.Contains(r.reservations, reservation)
}

// Book attaches reservation to an Available room and marks it Reserved.
func (r *Room) Book(reservation *Reservation) error {
	if r.Status != StatusAvailable {
		return fmt.Errorf("%w: room %d is %s", ErrRoomNotAvailable, r.Number, r.Status)
	}

	r.reservations = append(r.reservations, reservation)
	r.Status = StatusReserved

	return nil
}

// Occupy marks the room Occupied for an active reservation. The previous
// status is not checked.
func (r *Room) Occupy(reservation *Reservation) error {
	if !r.HasActive(reservation) {
		return fmt.Errorf("%w: room %d", ErrReservationNotActive, r.Number)
	}

	r.Status = StatusOccupied

	return nil
}

// Release detaches an active reservation. The room goes back to Available
// once no active reservation is left.
func (r *Room) Release(reservation *Reservation) error {
	index := slices.Index(r.reservations, reservation)
	if index < 0 {
		return fmt.Errorf("%w: room %d", ErrReservationNotActive, r.Number)
	}

	r.reservations = slices.Delete(r.reservations, index, index+1)

	if len(r.reservations) == 0 {
		r.Status = StatusAvailable
	} else {
		r.Status = StatusReserved
	}

	return nil
}

// Describe renders the room as "Room 101 (Double - Double-bed) - R$150.00 - Status: Available".
func (r *Room) Describe(currency string) string {
	category := "Unknown"
	if r.Category != nil {
		category = r.Category.Name()
	}

	if bed, ok := BedTypeOf(r.Category); ok {
		category += " - " + bed.String()
	}

	return fmt.Sprintf("Room %d (%s) - %s"+constant.PriceFormat+" - Status: %s", r.Number, category, currency, r.Price, r.Status)
}

func (r *Room) String() string {
	return r.Describe(DefaultCurrency)
}
