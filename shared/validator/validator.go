package validator

import (
	"strings"
	"time"
	"unicode"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerAlphaSpaceValidation accepts words made of letters separated by whitespace.
func registerAlphaSpaceValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok || strings.TrimSpace(value) == constant.Empty {
		return false
	}

	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

func registerDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDate(value)

	return err == nil
}

func registerBirthDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	birthDate, err := timezone.ParseDate(value)
	if err != nil {
		return false
	}

	return ValidBirthDate(birthDate, timezone.Today())
}

// ValidBirthDate reports whether birthDate is not after today and implies an age of at most 120 whole years.
func ValidBirthDate(birthDate, today time.Time) bool {
	if birthDate.After(today) {
		return false
	}

	return timezone.AgeInYears(birthDate, today) <= constant.MaxGuestAgeYears
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("alphaspace", registerAlphaSpaceValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("birthdate", registerBirthDateValidation)
	if err != nil {
		panic(err)
	}
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.ValidationFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateField validates a single value typed by the operator and names it
// in the returned message.
func ValidateField(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.ValidationFromString(name + msg) //nolint:wrapcheck
	}

	return nil
}
