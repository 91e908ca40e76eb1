package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clinic-registry/internal/delivery/dto"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDoctor_CreatedWithSpecialties(t *testing.T) {
	app := newTestApp()

	body := []byte(`{"license":"D1","full_name":"Dr. Maria Garcia","specialties":[{"type":"Cardiology","days":["Monday","monday","Wednesday"]}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	app.doctorHandler.RegisterDoctor(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	doctor, err := app.registry.DoctorByLicense("D1")
	require.NoError(t, err)
	require.Len(t, doctor.Specialties, 1)
	assert.Equal(t, []string{"monday", "wednesday"}, doctor.Specialties[0].Days)
}

func TestRegisterDoctor_DuplicateLicense(t *testing.T) {
	app := newTestApp()
	app.seedPatientAndDoctor(t)

	body := []byte(`{"license":"D1","full_name":"Dr. Someone Else"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	app.doctorHandler.RegisterDoctor(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddSpecialty_DoctorNotFound(t *testing.T) {
	app := newTestApp()

	body := []byte(`{"type":"Dermatology","days":["friday"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors/missing/specialties", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"license": "missing"})
	w := httptest.NewRecorder()

	app.doctorHandler.AddSpecialty(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAvailability(t *testing.T) {
	app := newTestApp()
	app.seedPatientAndDoctor(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/D1/availability?day=monday,friday", nil)
	req = mux.SetURLVars(req, map[string]string{"license": "D1"})
	w := httptest.NewRecorder()

	app.doctorHandler.GetAvailability(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.AvailabilityResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"Cardiology"}, resp.Data.Specialties)
}

func TestGetDoctor_NotFound(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"license": "missing"})
	w := httptest.NewRecorder()

	app.doctorHandler.GetDoctor(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
