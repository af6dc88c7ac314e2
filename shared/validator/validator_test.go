package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

type guestInput struct {
	Name       string `validate:"required,alphaspace"`
	NationalID string `validate:"required,len=11,numeric"`
	Contact    string `validate:"required,numeric"`
	BirthDate  string `validate:"required,birthdate"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *guestInput
		expectError bool
	}{
		{
			name: "valid guest",
			data: &guestInput{
				Name:       "ana maria",
				NationalID: "12345678901",
				Contact:    "11987654321",
				BirthDate:  "15/08/1990",
			},
			expectError: false,
		},
		{
			name: "accented name",
			data: &guestInput{
				Name:       "joão conceição",
				NationalID: "12345678901",
				Contact:    "11987654321",
				BirthDate:  "15/08/1990",
			},
			expectError: false,
		},
		{
			name: "name with digits",
			data: &guestInput{
				Name:       "ana 2",
				NationalID: "12345678901",
				Contact:    "11987654321",
				BirthDate:  "15/08/1990",
			},
			expectError: true,
		},
		{
			name: "national id too short",
			data: &guestInput{
				Name:       "ana",
				NationalID: "1234567890",
				Contact:    "11987654321",
				BirthDate:  "15/08/1990",
			},
			expectError: true,
		},
		{
			name: "national id with letters",
			data: &guestInput{
				Name:       "ana",
				NationalID: "1234567890a",
				Contact:    "11987654321",
				BirthDate:  "15/08/1990",
			},
			expectError: true,
		},
		{
			name: "contact with dashes",
			data: &guestInput{
				Name:       "ana",
				NationalID: "12345678901",
				Contact:    "11-98765-4321",
				BirthDate:  "15/08/1990",
			},
			expectError: true,
		},
		{
			name: "birth date in iso layout",
			data: &guestInput{
				Name:       "ana",
				NationalID: "12345678901",
				Contact:    "11987654321",
				BirthDate:  "1990-08-15",
			},
			expectError: true,
		},
		{
			name: "birth date in the future",
			data: &guestInput{
				Name:       "ana",
				NationalID: "12345678901",
				Contact:    "11987654321",
				BirthDate:  timezone.FormatDate(timezone.Today().AddDate(0, 0, 2)),
			},
			expectError: true,
		},
		{
			name: "birth date too old",
			data: &guestInput{
				Name:       "ana",
				NationalID: "12345678901",
				Contact:    "11987654321",
				BirthDate:  "01/01/1850",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if err != nil && !failure.Is(err, failure.CodeValidation) {
				t.Errorf("expected validation failure, got %v", err)
			}
		})
	}
}

func TestValidateFieldTags(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid date",
			field:       "29/02/2024",
			tag:         "date",
			expectError: false,
		},
		{
			name:        "non leap day",
			field:       "29/02/2023",
			tag:         "date",
			expectError: true,
		},
		{
			name:        "valid category",
			field:       "triple",
			tag:         "oneof=single double triple",
			expectError: false,
		},
		{
			name:        "invalid category",
			field:       "suite",
			tag:         "oneof=single double triple",
			expectError: true,
		},
		{
			name:        "positive price",
			field:       150.0,
			tag:         "gt=0",
			expectError: false,
		},
		{
			name:        "zero price",
			field:       0.0,
			tag:         "gt=0",
			expectError: true,
		},
		{
			name:        "blank name",
			field:       "   ",
			tag:         "alphaspace",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateField("Field", tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidBirthDate(t *testing.T) {
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		want      bool
	}{
		{name: "born today", birthDate: today, want: true},
		{name: "born tomorrow", birthDate: today.AddDate(0, 0, 1), want: false},
		{name: "hundred years", birthDate: today.AddDate(-100, 0, 0), want: true},
		{name: "hundred and twenty one years", birthDate: today.AddDate(-121, 0, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.ValidBirthDate(tt.birthDate, today); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValidBirthDateIgnoresOffsets(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// Summer time is in effect on the reference day, the birth dates predate it.
	today := time.Date(2018, time.November, 10, 0, 0, 0, 0, loc)
	limitDays := (120 + 1) * 365

	tooOld := time.Date(2018, time.November, 10-limitDays, 0, 0, 0, 0, loc)
	if validator.ValidBirthDate(tooOld, today) {
		t.Errorf("expected %s to be rejected, it is 121 years of days before %s", tooOld, today)
	}

	oldest := time.Date(2018, time.November, 10-limitDays+1, 0, 0, 0, 0, loc)
	if !validator.ValidBirthDate(oldest, today) {
		t.Errorf("expected %s to be accepted", oldest)
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		data     *guestInput
		contains string
	}{
		{
			name:     "required",
			data:     &guestInput{},
			contains: "Name is required",
		},
		{
			name: "len",
			data: &guestInput{
				Name:       "ana",
				NationalID: "123",
				Contact:    "1",
				BirthDate:  "01/01/1990",
			},
			contains: "NationalID must have exactly 11 characters",
		},
		{
			name: "date layout",
			data: &guestInput{
				Name:       "ana",
				NationalID: "12345678901",
				Contact:    "1",
				BirthDate:  "1990",
			},
			contains: "BirthDate must be a dd/mm/yyyy date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}

			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected message containing %q, got: %s", tt.contains, err.Error())
			}
		})
	}
}

func TestValidateField(t *testing.T) {
	err := validator.ValidateField("National ID", "123", "required,len=11,numeric")
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() != "National ID must have exactly 11 characters" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	if err := validator.ValidateField("Contact", "11987654321", "required,numeric"); err != nil {
		t.Errorf("expected no validation error, got: %v", err)
	}
}
