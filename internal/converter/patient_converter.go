package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to a PatientResponse DTO.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		FullName:  patient.FullName,
		BirthDate: patient.BirthDate.Format("2006-01-02"),
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs.
func PatientsToResponses(patients []*entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(patient)
	}
	return responses
}
