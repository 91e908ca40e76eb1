package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/registry"
	"go-clinic-registry/internal/usecase"
	"go-clinic-registry/pkg/response"
	"go-clinic-registry/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.ScheduleAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, registry.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, registry.ErrDoctorUnavailable):
			response.Error(w, http.StatusConflict, "Doctor does not offer this specialty on that day", nil)
		case errors.Is(err, registry.ErrAppointmentConflict):
			response.Error(w, http.StatusConflict, "Appointment slot already taken", nil)
		case errors.Is(err, usecase.ErrInvalidAppointmentTime):
			response.Error(w, http.StatusBadRequest, "Invalid appointment time", nil)
		default:
			response.InternalServerError(w, "Failed to schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
