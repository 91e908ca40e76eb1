package registry_test

import (
	"testing"
	"time"

	"go-clinic-registry/internal/domain/entity"
	"go-clinic-registry/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday  = time.Date(2024, 6, 17, 10, 30, 0, 0, time.UTC)
	tuesday = time.Date(2024, 6, 18, 10, 30, 0, 0, time.UTC)
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()

	patient := entity.NewPatient("1", "Ana", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, reg.RegisterPatient(patient))

	doctor := entity.NewDoctor("D1", "Dr. Maria Garcia")
	require.NoError(t, reg.RegisterDoctor(doctor))
	require.NoError(t, reg.AddSpecialtyToDoctor("D1", entity.NewSpecialty("Cardiology", []string{"monday", "wednesday"})))

	return reg
}

func TestRegisterPatient_Duplicate(t *testing.T) {
	reg := newTestRegistry(t)

	dup := entity.NewPatient("1", "Someone Else", time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC))
	err := reg.RegisterPatient(dup)

	assert.ErrorIs(t, err, registry.ErrDuplicatePatient)
	assert.Len(t, reg.Patients(), 1)
}

func TestRegisterPatient_CreatesEmptyHistory(t *testing.T) {
	reg := newTestRegistry(t)

	history, err := reg.History("1")
	require.NoError(t, err)
	assert.Equal(t, "1", history.Patient.ID)
	assert.Empty(t, history.Appointments)
	assert.Empty(t, history.Prescriptions)
}

func TestRegisterDoctor_DuplicateLicense(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.RegisterDoctor(entity.NewDoctor("D1", "Dr. Someone Else"))

	assert.ErrorIs(t, err, registry.ErrDoctorUnavailable)
	assert.Len(t, reg.Doctors(), 1)
}

func TestHistory_UnknownPatient(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.History("missing")
	assert.ErrorIs(t, err, registry.ErrPatientNotFound)
}

func TestScheduleAppointment_Success(t *testing.T) {
	reg := newTestRegistry(t)

	appointment, err := reg.ScheduleAppointment("1", "D1", "Cardiology", monday)
	require.NoError(t, err)
	assert.Equal(t, "1", appointment.Patient.ID)
	assert.Equal(t, "D1", appointment.Doctor.License)
	assert.Equal(t, "Cardiology", appointment.Specialty)

	// Reflected both clinic-wide and in the patient's history.
	assert.Len(t, reg.Appointments(), 1)
	history, err := reg.History("1")
	require.NoError(t, err)
	assert.Len(t, history.Appointments, 1)
}

func TestScheduleAppointment_PatientNotFound(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ScheduleAppointment("missing", "D1", "Cardiology", monday)
	assert.ErrorIs(t, err, registry.ErrPatientNotFound)
	assert.Empty(t, reg.Appointments())
}

func TestScheduleAppointment_DoctorNotFound(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ScheduleAppointment("1", "missing", "Cardiology", monday)
	assert.ErrorIs(t, err, registry.ErrDoctorNotFound)
}

func TestScheduleAppointment_DoctorUnavailableOnDay(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ScheduleAppointment("1", "D1", "Cardiology", tuesday)
	assert.ErrorIs(t, err, registry.ErrDoctorUnavailable)

	history, herr := reg.History("1")
	require.NoError(t, herr)
	assert.Empty(t, history.Appointments)
}

func TestScheduleAppointment_UnknownSpecialty(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ScheduleAppointment("1", "D1", "Dermatology", monday)
	assert.ErrorIs(t, err, registry.ErrDoctorUnavailable)
}

// Conflicts are detected by comparing the (patient, doctor, timestamp)
// triple field by field, so a second booking built from fresh inputs still
// collides with the stored one.
func TestScheduleAppointment_Conflict(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ScheduleAppointment("1", "D1", "Cardiology", monday)
	require.NoError(t, err)

	_, err = reg.ScheduleAppointment("1", "D1", "Cardiology", monday)
	assert.ErrorIs(t, err, registry.ErrAppointmentConflict)
	assert.Len(t, reg.Appointments(), 1)
}

func TestScheduleAppointment_DifferentTimestampNoConflict(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ScheduleAppointment("1", "D1", "Cardiology", monday)
	require.NoError(t, err)

	_, err = reg.ScheduleAppointment("1", "D1", "Cardiology", monday.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, reg.Appointments(), 2)
}

func TestScheduleAppointment_DifferentPatientSameSlot(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.RegisterPatient(entity.NewPatient("2", "Luis", time.Date(1988, 3, 2, 0, 0, 0, 0, time.UTC))))

	_, err := reg.ScheduleAppointment("1", "D1", "Cardiology", monday)
	require.NoError(t, err)

	// The conflict triple includes the patient, so another patient may take
	// the same doctor and timestamp.
	_, err = reg.ScheduleAppointment("2", "D1", "Cardiology", monday)
	require.NoError(t, err)
}

func TestIssuePrescription_Success(t *testing.T) {
	reg := newTestRegistry(t)

	prescription, err := reg.IssuePrescription("1", "D1", []string{"Ibuprofen", "Paracetamol"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ibuprofen", "Paracetamol"}, prescription.Medications)
	assert.False(t, prescription.IssuedAt.IsZero())

	history, err := reg.History("1")
	require.NoError(t, err)
	assert.Len(t, history.Prescriptions, 1)
}

func TestIssuePrescription_EmptyMedications(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.IssuePrescription("1", "D1", nil)
	assert.ErrorIs(t, err, registry.ErrInvalidPrescription)

	history, herr := reg.History("1")
	require.NoError(t, herr)
	assert.Empty(t, history.Prescriptions)
}

func TestIssuePrescription_UnknownParticipants(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.IssuePrescription("missing", "D1", []string{"Ibuprofen"})
	assert.ErrorIs(t, err, registry.ErrPatientNotFound)

	_, err = reg.IssuePrescription("1", "missing", []string{"Ibuprofen"})
	assert.ErrorIs(t, err, registry.ErrDoctorNotFound)
}

func TestDoctorByLicense(t *testing.T) {
	reg := newTestRegistry(t)

	doctor, err := reg.DoctorByLicense("D1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Maria Garcia", doctor.FullName)

	_, err = reg.DoctorByLicense("missing")
	assert.ErrorIs(t, err, registry.ErrDoctorNotFound)
}

func TestDoctorAvailability(t *testing.T) {
	reg := newTestRegistry(t)

	specialties, err := reg.DoctorAvailability("D1", "monday")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardiology"}, specialties)

	specialties, err = reg.DoctorAvailability("D1", "tuesday")
	require.NoError(t, err)
	assert.Empty(t, specialties)

	_, err = reg.DoctorAvailability("missing", "monday")
	assert.ErrorIs(t, err, registry.ErrDoctorNotFound)
}

func TestAddSpecialtyToDoctor_NotFound(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.AddSpecialtyToDoctor("missing", entity.NewSpecialty("Dermatology", []string{"friday"}))
	assert.ErrorIs(t, err, registry.ErrDoctorNotFound)
}

func TestListings_InsertionOrderAndIdempotence(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.RegisterPatient(entity.NewPatient("2", "Luis", time.Date(1988, 3, 2, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, reg.RegisterDoctor(entity.NewDoctor("D2", "Dr. Juan Perez")))

	patients := reg.Patients()
	require.Len(t, patients, 2)
	assert.Equal(t, "1", patients[0].ID)
	assert.Equal(t, "2", patients[1].ID)
	assert.Equal(t, patients, reg.Patients())

	doctors := reg.Doctors()
	require.Len(t, doctors, 2)
	assert.Equal(t, "D1", doctors[0].License)
	assert.Equal(t, "D2", doctors[1].License)
	assert.Equal(t, doctors, reg.Doctors())

	assert.Equal(t, reg.Appointments(), reg.Appointments())
}

func TestDoctorByLicense_SnapshotNotAffectedByLaterSpecialty(t *testing.T) {
	reg := newTestRegistry(t)

	before, err := reg.DoctorByLicense("D1")
	require.NoError(t, err)
	require.NoError(t, reg.AddSpecialtyToDoctor("D1", entity.NewSpecialty("Dermatology", []string{"friday"})))

	assert.Len(t, before.Specialties, 1)

	after, err := reg.DoctorByLicense("D1")
	require.NoError(t, err)
	assert.Len(t, after.Specialties, 2)
}

// Doctor reads must stay safe while another goroutine keeps extending the
// same doctor's specialty list. Run with -race.
func TestDoctorReads_ConcurrentWithSpecialtyMutation(t *testing.T) {
	reg := newTestRegistry(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = reg.AddSpecialtyToDoctor("D1", entity.NewSpecialty("Dermatology", []string{"friday"}))
		}
	}()

	for i := 0; i < 200; i++ {
		doctor, err := reg.DoctorByLicense("D1")
		require.NoError(t, err)
		for _, s := range doctor.Specialties {
			assert.NotEmpty(t, s.Type)
		}
		for _, d := range reg.Doctors() {
			_ = d.SpecialtiesForDay("friday")
		}
	}
	<-done
}

func TestListings_SnapshotNotAffectedByLaterMutation(t *testing.T) {
	reg := newTestRegistry(t)

	before := reg.Appointments()
	_, err := reg.ScheduleAppointment("1", "D1", "Cardiology", monday)
	require.NoError(t, err)

	assert.Empty(t, before)
	assert.Len(t, reg.Appointments(), 1)
}
