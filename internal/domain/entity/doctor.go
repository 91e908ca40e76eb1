package entity

import (
	"slices"
	"strings"
)

// Doctor holds a doctor's identity and the specialties they offer.
// The specialty list is append-only.
type Doctor struct {
	License     string      `json:"license"`
	FullName    string      `json:"full_name"`
	Specialties []Specialty `json:"specialties"`
}

func NewDoctor(license, fullName string, specialties ...Specialty) *Doctor {
	return &Doctor{
		License:     license,
		FullName:    fullName,
		Specialties: specialties,
	}
}

// AddSpecialty appends unconditionally; duplicate detection is the caller's
// concern.
func (d *Doctor) AddSpecialty(s Specialty) {
	d.Specialties = append(d.Specialties, s)
}

// SpecialtiesForDay returns the labels of every specialty the doctor offers
// on the given day. daySpec is a single weekday name or a comma-separated
// list of weekday names; a single day is just a one-token split. Each label
// appears at most once, in specialty insertion order per token. A blank
// daySpec returns an empty list without scanning.
func (d *Doctor) SpecialtiesForDay(daySpec string) []string {
	if strings.TrimSpace(daySpec) == "" {
		return []string{}
	}

	found := []string{}
	for _, token := range strings.Split(daySpec, ",") {
		token = strings.TrimSpace(token)
		for _, s := range d.Specialties {
			if s.Offers(token) && !slices.Contains(found, s.Type) {
				found = append(found, s.Type)
			}
		}
	}
	return found
}
