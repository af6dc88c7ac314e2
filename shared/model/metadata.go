package model

import (
	"time"

	"hotel/shared/timezone"
)

type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `json:"created_by"`
	ModifiedBy string    `json:"modified_by"`
}

func NewMetadata(operator string) Metadata {
	now := timezone.Now()

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  operator,
		ModifiedBy: operator,
	}
}

// Touch records a modification made by operator.
func (m *Metadata) Touch(operator string) {
	m.ModifiedAt = timezone.Now()
	if operator != "" {
		m.ModifiedBy = operator
	}
}
