package model

import "time"

// Guest is the person a reservation is made for. NationalID is not unique
// across reservations.
type Guest struct {
	Name       string
	NationalID string
	Contact    string
	BirthDate  time.Time
}

func NewGuest(name, nationalID, contact string, birthDate time.Time) *Guest {
	return &Guest{
		Name:       name,
		NationalID: nationalID,
		Contact:    contact,
		BirthDate:  birthDate,
	}
}
