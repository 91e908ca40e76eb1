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

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		if errors.Is(err, registry.ErrDoctorUnavailable) {
			response.Error(w, http.StatusConflict, "License already registered", nil)
			return
		}
		response.InternalServerError(w, "Failed to register doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	license := vars["license"]

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), license)
	if err != nil {
		if errors.Is(err, registry.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) AddSpecialty(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	license := vars["license"]

	var req dto.AddSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.AddSpecialty(r.Context(), license, &req)
	if err != nil {
		if errors.Is(err, registry.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to add specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty added successfully", doctor)
}

// GetAvailability answers "what does this doctor offer on day X", where the
// day query parameter accepts a weekday name or a comma-separated list.
func (h *DoctorHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	license := vars["license"]
	daySpec := r.URL.Query().Get("day")

	availability, err := h.doctorUsecase.GetAvailability(r.Context(), license, daySpec)
	if err != nil {
		if errors.Is(err, registry.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to resolve availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}
