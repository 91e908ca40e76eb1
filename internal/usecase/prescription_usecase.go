package usecase

import (
	"context"

	"go-clinic-registry/internal/converter"
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/registry"

	"github.com/sirupsen/logrus"
)

type PrescriptionUsecase interface {
	IssuePrescription(ctx context.Context, req *dto.IssuePrescriptionRequest) (*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	log      *logrus.Logger
	registry *registry.Registry
}

func NewPrescriptionUsecase(log *logrus.Logger, reg *registry.Registry) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:      log,
		registry: reg,
	}
}

func (u *prescriptionUsecase) IssuePrescription(ctx context.Context, req *dto.IssuePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.registry.IssuePrescription(req.PatientID, req.License, req.Medications)
	if err != nil {
		u.log.Warnf("Failed to issue prescription for patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	u.log.Infof("Prescription issued: patient=%s, doctor=%s, medications=%d", req.PatientID, req.License, len(prescription.Medications))
	return converter.PrescriptionToResponse(prescription), nil
}
