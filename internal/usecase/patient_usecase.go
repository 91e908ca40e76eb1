package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-registry/internal/converter"
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
	"go-clinic-registry/internal/registry"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidBirthDate = errors.New("invalid birth date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetHistory(ctx context.Context, patientID string) (*dto.HistoryResponse, error)
}

type patientUsecase struct {
	log      *logrus.Logger
	registry *registry.Registry
}

func NewPatientUsecase(log *logrus.Logger, reg *registry.Registry) PatientUsecase {
	return &patientUsecase{
		log:      log,
		registry: reg,
	}
}

// RegisterPatient parses the birth date and registers the patient. The
// registry only ever sees pre-parsed date values.
func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	patient := entity.NewPatient(req.ID, req.FullName, birthDate)
	if err := u.registry.RegisterPatient(patient); err != nil {
		u.log.Warnf("Failed to register patient %s: %+v", req.ID, err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%s", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients := u.registry.Patients()

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetHistory(ctx context.Context, patientID string) (*dto.HistoryResponse, error) {
	history, err := u.registry.History(patientID)
	if err != nil {
		u.log.Warnf("Failed to find history for patient %s: %+v", patientID, err)
		return nil, err
	}

	return converter.HistoryToResponse(history), nil
}
