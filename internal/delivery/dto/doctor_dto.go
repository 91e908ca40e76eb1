package dto

// Request DTOs

type SpecialtyPayload struct {
	Type string   `json:"type" validate:"required"`
	Days []string `json:"days" validate:"omitempty,dive,required"`
}

type RegisterDoctorRequest struct {
	License     string             `json:"license" validate:"required"`
	FullName    string             `json:"full_name" validate:"required,min=2"`
	Specialties []SpecialtyPayload `json:"specialties" validate:"omitempty,dive"`
}

type AddSpecialtyRequest struct {
	Type string   `json:"type" validate:"required"`
	Days []string `json:"days" validate:"omitempty,dive,required"`
}

// Response DTOs

type SpecialtyResponse struct {
	Type string   `json:"type"`
	Days []string `json:"days"`
}

type DoctorResponse struct {
	License     string              `json:"license"`
	FullName    string              `json:"full_name"`
	Specialties []SpecialtyResponse `json:"specialties"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// AvailabilityResponse lists the specialty labels a doctor offers for the
// requested day spec.
type AvailabilityResponse struct {
	License     string   `json:"license"`
	Day         string   `json:"day"`
	Specialties []string `json:"specialties"`
}
