package dto

import "time"

// Request DTOs

// Medications carries no min-length tag on purpose: the empty-list rule
// belongs to the registry, which reports it as an invalid prescription.
type IssuePrescriptionRequest struct {
	PatientID   string   `json:"patient_id" validate:"required"`
	License     string   `json:"license" validate:"required"`
	Medications []string `json:"medications" validate:"omitempty,dive,required"`
}

// Response DTOs

type PrescriptionResponse struct {
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	License     string    `json:"license"`
	DoctorName  string    `json:"doctor_name"`
	Medications []string  `json:"medications"`
	IssuedAt    time.Time `json:"issued_at"`
}
