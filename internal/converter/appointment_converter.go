package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to a response DTO.
// The back-referenced patient and doctor are rendered by id plus name only.
func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		PatientID:   a.Patient.ID,
		PatientName: a.Patient.FullName,
		License:     a.Doctor.License,
		DoctorName:  a.Doctor.FullName,
		Specialty:   a.Specialty,
		DateTime:    a.DateTime.Format("2006-01-02 15:04"),
		Weekday:     entity.WeekdayName(a.DateTime),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to
// response DTOs.
func AppointmentsToResponses(appointments []*entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = *AppointmentToResponse(a)
	}
	return responses
}
