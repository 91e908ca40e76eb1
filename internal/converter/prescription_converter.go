package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to a response DTO.
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		PatientID:   p.Patient.ID,
		PatientName: p.Patient.FullName,
		License:     p.Doctor.License,
		DoctorName:  p.Doctor.FullName,
		Medications: p.Medications,
		IssuedAt:    p.IssuedAt,
	}
}

func PrescriptionsToResponses(prescriptions []*entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		responses[i] = *PrescriptionToResponse(p)
	}
	return responses
}
