package shared

import (
	"fmt"
	"strconv"
	"strings"

	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt parses a whole number typed by the operator.
func ConvertStringToInt(value string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to int")

		return 0, failure.ValidationFromString(fmt.Sprintf("%q is not a whole number", value)) //nolint:wrapcheck
	}

	return number, nil
}

// ConvertStringToFloat accepts both "150.50" and "150,50".
func ConvertStringToFloat(value string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")

	number, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to float")

		return 0, failure.ValidationFromString(fmt.Sprintf("%q is not a number", value)) //nolint:wrapcheck
	}

	return number, nil
}

// NormalizeName trims and lower-cases a guest name the way it is stored.
func NormalizeName(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
