package dto

// Request DTOs

type ScheduleAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	License   string `json:"license" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	DateTime  string `json:"date_time" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	License     string `json:"license"`
	DoctorName  string `json:"doctor_name"`
	Specialty   string `json:"specialty"`
	DateTime    string `json:"date_time"`
	Weekday     string `json:"weekday"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
