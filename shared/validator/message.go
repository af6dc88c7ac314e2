package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":        "{field} is required",
		"required_unless": "{field} is required",
		"gt":              "{field} must be greater than {param}",
		"gte":             "{field} must be greater than or equal to {param}",
		"lte":             "{field} must be less than or equal to {param}",
		"oneof":           "{field} must be one of {param}",
		"max":             "{field} must be less than or equal to {param}",
		"min":             "{field} must be greater than or equal to {param}",
		"len":             "{field} must have exactly {param} characters",
		"numeric":         "{field} must contain only digits",
		"alphaspace":      "{field} must contain only letters and spaces",
		"date":            "{field} must be a date in the dd/mm/yyyy format",
		"birthdate":       "{field} must be a dd/mm/yyyy date not in the future and at most 120 years ago",
		"empty":           "{field} must be empty",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
