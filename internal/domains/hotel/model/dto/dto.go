package dto

import (
	"time"

	"hotel/internal/domains/hotel/model"
	"hotel/shared"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/validator"
)

type CreateRoomRequest struct {
	Number   int     `json:"number"`
	Category string  `json:"category" validate:"required,oneof=single double triple"`
	BedType  string  `json:"bed_type" validate:"required_unless=Category single,omitempty,oneof=single double"`
	Price    float64 `json:"price"    validate:"gt=0"`
}

func (c *CreateRoomRequest) ToModel(operator string) (*model.Room, error) {
	if err := validator.ValidateStruct(c); err != nil {
		return nil, err
	}

	bed, _ := model.ParseBedType(c.BedType)

	category, ok := model.NewCategory(c.Category, bed)
	if !ok {
		return nil, failure.ValidationFromString("unknown room category " + c.Category) //nolint:wrapcheck
	}

	room := model.NewRoom(c.Number, category, c.Price)
	room.Metadata = gModel.NewMetadata(operator)

	return room, nil
}

type CreateGuestRequest struct {
	Name       string `json:"name"        validate:"required,alphaspace"`
	NationalID string `json:"national_id" validate:"required,len=11,numeric"`
	Contact    string `json:"contact"     validate:"required,numeric"`
	BirthDate  string `json:"birth_date"  validate:"required,birthdate"`
}

func (c *CreateGuestRequest) ToModel() (*model.Guest, error) {
	if err := validator.ValidateStruct(c); err != nil {
		return nil, err
	}

	birthDate, err := timezone.ParseDate(c.BirthDate)
	if err != nil {
		return nil, failure.Validation(err) //nolint:wrapcheck
	}

	return model.NewGuest(shared.NormalizeName(c.Name), c.NationalID, c.Contact, birthDate), nil
}

type PeriodRequest struct {
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date"   validate:"required,date"`
}

// Parse returns the validated [start, end] period.
func (p *PeriodRequest) Parse() (start, end time.Time, err error) {
	if err = validator.ValidateStruct(p); err != nil {
		return start, end, err
	}

	start, err = timezone.ParseDate(p.StartDate)
	if err != nil {
		return start, end, failure.Validation(err) //nolint:wrapcheck
	}

	end, err = timezone.ParseDate(p.EndDate)
	if err != nil {
		return start, end, failure.Validation(err) //nolint:wrapcheck
	}

	if end.Before(start) {
		return start, end, failure.Validation(model.ErrInvalidPeriod) //nolint:wrapcheck
	}

	return start, end, nil
}
