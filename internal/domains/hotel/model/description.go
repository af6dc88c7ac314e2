package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var descriptionPattern = regexp.MustCompile(
	`^Room (-?\d+) \((Single|Double|Triple)(?: - (Single-bed|Double-bed))?\) - (.*?)(-?\d+\.\d{2}) - Status: (Available|Reserved|Occupied)$`,
)

// Description is what can be read back from a rendered room. Price keeps
// only the two rendered decimals.
type Description struct {
	Number   int
	Category Category
	Currency string
	Price    float64
	Status   Status
}

// ParseDescription reads back the output of Room.Describe.
func ParseDescription(value string) (Description, error) {
	matches := descriptionPattern.FindStringSubmatch(value)
	if matches == nil {
		return Description{}, fmt.Errorf("unrecognized room description %q", value)
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil {
		return Description{}, fmt.Errorf("invalid room number: %w", err)
	}

	var bed BedType
	if matches[3] != "" {
		bed, _ = ParseBedType(matches[3])
	}

	category, _ := NewCategory(matches[2], bed)

	price, err := strconv.ParseFloat(matches[5], 64)
	if err != nil {
		return Description{}, fmt.Errorf("invalid room price: %w", err)
	}

	status, _ := ParseStatus(matches[6])

	return Description{
		Number:   number,
		Category: category,
		Currency: matches[4],
		Price:    price,
		Status:   status,
	}, nil
}
