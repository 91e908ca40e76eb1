package usecase

import (
	"context"

	"go-clinic-registry/internal/converter"
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
	"go-clinic-registry/internal/registry"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	AddSpecialty(ctx context.Context, license string, req *dto.AddSpecialtyRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, license string) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetAvailability(ctx context.Context, license, daySpec string) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	log      *logrus.Logger
	registry *registry.Registry
}

func NewDoctorUsecase(log *logrus.Logger, reg *registry.Registry) DoctorUsecase {
	return &doctorUsecase{
		log:      log,
		registry: reg,
	}
}

func (u *doctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	specialties := make([]entity.Specialty, len(req.Specialties))
	for i, s := range req.Specialties {
		specialties[i] = entity.NewSpecialty(s.Type, s.Days)
	}

	doctor := entity.NewDoctor(req.License, req.FullName, specialties...)
	if err := u.registry.RegisterDoctor(doctor); err != nil {
		u.log.Warnf("Failed to register doctor %s: %+v", req.License, err)
		return nil, err
	}

	u.log.Infof("Doctor registered: license=%s", doctor.License)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) AddSpecialty(ctx context.Context, license string, req *dto.AddSpecialtyRequest) (*dto.DoctorResponse, error) {
	specialty := entity.NewSpecialty(req.Type, req.Days)
	if err := u.registry.AddSpecialtyToDoctor(license, specialty); err != nil {
		u.log.Warnf("Failed to add specialty to doctor %s: %+v", license, err)
		return nil, err
	}

	doctor, err := u.registry.DoctorByLicense(license)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, license string) (*dto.DoctorResponse, error) {
	doctor, err := u.registry.DoctorByLicense(license)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", license, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors := u.registry.Doctors()

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// GetAvailability resolves the specialties the doctor offers for daySpec,
// which may name a single weekday or a comma-separated list of weekdays.
func (u *doctorUsecase) GetAvailability(ctx context.Context, license, daySpec string) (*dto.AvailabilityResponse, error) {
	specialties, err := u.registry.DoctorAvailability(license, daySpec)
	if err != nil {
		u.log.Warnf("Failed to resolve availability for doctor %s: %+v", license, err)
		return nil, err
	}

	return &dto.AvailabilityResponse{
		License:     license,
		Day:         daySpec,
		Specialties: specialties,
	}, nil
}
