package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// HistoryToResponse converts a ClinicalHistory entity to a response DTO.
func HistoryToResponse(h *entity.ClinicalHistory) *dto.HistoryResponse {
	if h == nil {
		return nil
	}

	return &dto.HistoryResponse{
		Patient:       *PatientToResponse(h.Patient),
		Appointments:  AppointmentsToResponses(h.Appointments),
		Prescriptions: PrescriptionsToResponses(h.Prescriptions),
	}
}
