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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrDuplicatePatient):
			response.Error(w, http.StatusConflict, "Patient already registered", nil)
		case errors.Is(err, usecase.ErrInvalidBirthDate):
			response.Error(w, http.StatusBadRequest, "Invalid birth date", nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]

	history, err := h.patientUsecase.GetHistory(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, registry.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinical history")
		return
	}

	response.Success(w, http.StatusOK, "Clinical history retrieved successfully", history)
}
