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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) IssuePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.IssuePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.IssuePrescription(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, registry.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, registry.ErrInvalidPrescription):
			response.Error(w, http.StatusBadRequest, "Medication list cannot be empty", nil)
		default:
			response.InternalServerError(w, "Failed to issue prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription issued successfully", prescription)
}
