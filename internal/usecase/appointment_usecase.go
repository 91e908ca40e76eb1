package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-registry/internal/converter"
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/registry"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAppointmentTime = errors.New("invalid appointment time format, use YYYY-MM-DD HH:MM")
)

type AppointmentUsecase interface {
	ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log      *logrus.Logger
	registry *registry.Registry
}

func NewAppointmentUsecase(log *logrus.Logger, reg *registry.Registry) AppointmentUsecase {
	return &appointmentUsecase{
		log:      log,
		registry: reg,
	}
}

// ScheduleAppointment parses the requested timestamp and books it through
// the registry, which performs the availability and conflict checks.
func (u *appointmentUsecase) ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	dateTime, err := time.Parse("2006-01-02 15:04", req.DateTime)
	if err != nil {
		return nil, ErrInvalidAppointmentTime
	}

	appointment, err := u.registry.ScheduleAppointment(req.PatientID, req.License, req.Specialty, dateTime)
	if err != nil {
		u.log.Warnf("Failed to schedule appointment for patient %s with doctor %s: %+v", req.PatientID, req.License, err)
		return nil, err
	}

	u.log.Infof("Appointment scheduled: patient=%s, doctor=%s, at=%s", req.PatientID, req.License, req.DateTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments := u.registry.Appointments()

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
