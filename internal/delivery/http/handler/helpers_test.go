package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"go-clinic-registry/internal/delivery/http/handler"
	"go-clinic-registry/internal/domain/entity"
	"go-clinic-registry/internal/registry"
	"go-clinic-registry/internal/usecase"
	"go-clinic-registry/pkg/response"
	"go-clinic-registry/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testApp wires real usecases over a fresh registry; the engine is
// in-memory, so handler tests run against the full stack.
type testApp struct {
	registry            *registry.Registry
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
}

func newTestApp() *testApp {
	log := logrus.New()
	log.SetOutput(io.Discard)

	reg := registry.New()
	v := validator.NewValidator()

	return &testApp{
		registry:            reg,
		patientHandler:      handler.NewPatientHandler(usecase.NewPatientUsecase(log, reg), v),
		doctorHandler:       handler.NewDoctorHandler(usecase.NewDoctorUsecase(log, reg), v),
		appointmentHandler:  handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(log, reg), v),
		prescriptionHandler: handler.NewPrescriptionHandler(usecase.NewPrescriptionUsecase(log, reg), v),
	}
}

func (a *testApp) seedPatientAndDoctor(t *testing.T) {
	t.Helper()
	require.NoError(t, a.registry.RegisterPatient(entity.NewPatient("1", "Ana", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))))
	doctor := entity.NewDoctor("D1", "Dr. Maria Garcia", entity.NewSpecialty("Cardiology", []string{"monday", "wednesday"}))
	require.NoError(t, a.registry.RegisterDoctor(doctor))
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}
