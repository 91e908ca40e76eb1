package entity

import "strings"

// Specialty is a value object pairing a specialty label with the weekdays it
// is offered on. Days are stored lower-cased and de-duplicated, preserving
// the order in which distinct values first appear.
type Specialty struct {
	Type string   `json:"type"`
	Days []string `json:"days"`
}

// NewSpecialty normalizes the day list; any input is accepted, including an
// empty one (the specialty then offers on no day).
func NewSpecialty(specialtyType string, days []string) Specialty {
	normalized := make([]string, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, day := range days {
		lower := strings.ToLower(day)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		normalized = append(normalized, lower)
	}
	return Specialty{Type: specialtyType, Days: normalized}
}

// Offers reports whether the specialty is offered on the given weekday.
// The comparison is case-insensitive.
func (s Specialty) Offers(day string) bool {
	if len(s.Days) == 0 {
		return false
	}
	lower := strings.ToLower(day)
	for _, d := range s.Days {
		if d == lower {
			return true
		}
	}
	return false
}
