package entity

import "time"

// Prescription is an immutable record of medications issued to a patient by
// a doctor. The issuance timestamp is captured at construction time.
type Prescription struct {
	Patient     *Patient  `json:"patient"`
	Doctor      *Doctor   `json:"doctor"`
	Medications []string  `json:"medications"`
	IssuedAt    time.Time `json:"issued_at"`
}

// NewPrescription accepts whatever medication list it is given; the
// non-empty check is the registry's responsibility. The list is copied so
// later caller mutations cannot reach the record.
func NewPrescription(patient *Patient, doctor *Doctor, medications []string) *Prescription {
	meds := make([]string, len(medications))
	copy(meds, medications)
	return &Prescription{
		Patient:     patient,
		Doctor:      doctor,
		Medications: meds,
		IssuedAt:    time.Now(),
	}
}
