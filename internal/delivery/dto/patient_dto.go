package dto

// Request DTOs

type RegisterPatientRequest struct {
	ID        string `json:"id" validate:"required"`
	FullName  string `json:"full_name" validate:"required,min=2"`
	BirthDate string `json:"birth_date" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

// HistoryResponse is the rendered clinical history of a single patient.
type HistoryResponse struct {
	Patient       PatientResponse        `json:"patient"`
	Appointments  []AppointmentResponse  `json:"appointments"`
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
}
