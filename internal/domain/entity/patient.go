package entity

import "time"

// Patient is a pure value holder. The birth date is supplied already parsed
// by the caller; the core never parses date strings.
type Patient struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	BirthDate time.Time `json:"birth_date"`
}

func NewPatient(id, fullName string, birthDate time.Time) *Patient {
	return &Patient{
		ID:        id,
		FullName:  fullName,
		BirthDate: birthDate,
	}
}
