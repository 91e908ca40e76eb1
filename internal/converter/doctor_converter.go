package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

func SpecialtyToResponse(s entity.Specialty) dto.SpecialtyResponse {
	return dto.SpecialtyResponse{
		Type: s.Type,
		Days: s.Days,
	}
}

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	specialties := make([]dto.SpecialtyResponse, len(doctor.Specialties))
	for i, s := range doctor.Specialties {
		specialties[i] = SpecialtyToResponse(s)
	}

	return &dto.DoctorResponse{
		License:     doctor.License,
		FullName:    doctor.FullName,
		Specialties: specialties,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs.
func DoctorsToResponses(doctors []*entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(doctor)
	}
	return responses
}
