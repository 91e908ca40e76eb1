package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go-clinic-registry/internal/domain/entity"
)

var (
	ErrDuplicatePatient    = errors.New("patient already registered")
	ErrPatientNotFound     = errors.New("patient not registered")
	ErrDoctorNotFound      = errors.New("doctor not registered")
	ErrDoctorUnavailable   = errors.New("doctor unavailable")
	ErrAppointmentConflict = errors.New("appointment slot already taken")
	ErrInvalidPrescription = errors.New("medication list cannot be empty")
)

// Registry owns all patients, doctors and clinical histories and performs
// every cross-entity validation. Construct one per program (or per test)
// with New; there is no package-level instance.
//
// Mutations are read-then-write sequences, so they are serialized through a
// single exclusive lock. Reads take the shared lock and return snapshots.
type Registry struct {
	mu           sync.RWMutex
	patients     map[string]*entity.Patient
	doctors      map[string]*entity.Doctor
	histories    map[string]*entity.ClinicalHistory
	patientOrder []string
	doctorOrder  []string
	appointments []*entity.Appointment
}

func New() *Registry {
	return &Registry{
		patients:  make(map[string]*entity.Patient),
		doctors:   make(map[string]*entity.Doctor),
		histories: make(map[string]*entity.ClinicalHistory),
	}
}

// RegisterPatient stores the patient and creates its empty clinical history
// as one atomic step. Patient ids are unique within the registry.
func (r *Registry) RegisterPatient(p *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[p.ID]; ok {
		return fmt.Errorf("%w: id %s", ErrDuplicatePatient, p.ID)
	}

	r.patients[p.ID] = p
	r.histories[p.ID] = entity.NewClinicalHistory(p)
	r.patientOrder = append(r.patientOrder, p.ID)
	return nil
}

// RegisterDoctor stores the doctor. License ids are unique; a duplicate
// license is reported as ErrDoctorUnavailable.
func (r *Registry) RegisterDoctor(d *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.doctors[d.License]; ok {
		return fmt.Errorf("%w: license %s already registered", ErrDoctorUnavailable, d.License)
	}

	r.doctors[d.License] = d
	r.doctorOrder = append(r.doctorOrder, d.License)
	return nil
}

// AddSpecialtyToDoctor attaches a specialty to an already registered doctor.
func (r *Registry) AddSpecialtyToDoctor(license string, s entity.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doctor, ok := r.doctors[license]
	if !ok {
		return fmt.Errorf("%w: license %s", ErrDoctorNotFound, license)
	}

	doctor.AddSpecialty(s)
	return nil
}

// ScheduleAppointment validates the booking and, on success, appends the
// appointment to the clinic-wide list and to the patient's history. The
// operation either fully applies or applies none of its effects.
func (r *Registry) ScheduleAppointment(patientID, license, specialty string, dateTime time.Time) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient, ok := r.patients[patientID]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrPatientNotFound, patientID)
	}
	doctor, ok := r.doctors[license]
	if !ok {
		return nil, fmt.Errorf("%w: license %s", ErrDoctorNotFound, license)
	}

	day := entity.WeekdayName(dateTime)
	available := doctor.SpecialtiesForDay(day)
	if !slices.Contains(available, specialty) {
		return nil, fmt.Errorf("%w: doctor %s does not offer %s on %s", ErrDoctorUnavailable, license, specialty, day)
	}

	// Conflict is an equality test over the (patient, doctor, timestamp)
	// triple, not whole-record identity.
	for _, a := range r.appointments {
		if a.Patient.ID == patientID && a.Doctor.License == license && a.DateTime.Equal(dateTime) {
			return nil, fmt.Errorf("%w: patient %s with doctor %s at %s", ErrAppointmentConflict, patientID, license, dateTime.Format("2006-01-02 15:04"))
		}
	}

	appointment := entity.NewAppointment(patient, doctor, dateTime, specialty)
	r.appointments = append(r.appointments, appointment)
	r.histories[patientID].AddAppointment(appointment)
	return appointment, nil
}

// IssuePrescription validates the request and appends the prescription to
// the patient's history.
func (r *Registry) IssuePrescription(patientID, license string, medications []string) (*entity.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient, ok := r.patients[patientID]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrPatientNotFound, patientID)
	}
	doctor, ok := r.doctors[license]
	if !ok {
		return nil, fmt.Errorf("%w: license %s", ErrDoctorNotFound, license)
	}
	if len(medications) == 0 {
		return nil, ErrInvalidPrescription
	}

	prescription := entity.NewPrescription(patient, doctor, medications)
	r.histories[patientID].AddPrescription(prescription)
	return prescription, nil
}

// History returns a read-only snapshot of the patient's clinical history.
// The record lists are append-only, so the snapshot's slice headers stay
// consistent even if the registry keeps growing.
func (r *Registry) History(patientID string) (*entity.ClinicalHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history, ok := r.histories[patientID]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrPatientNotFound, patientID)
	}

	snapshot := *history
	return &snapshot, nil
}

// Patients returns a snapshot of all registered patients in insertion order.
func (r *Registry) Patients() []*entity.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]*entity.Patient, 0, len(r.patientOrder))
	for _, id := range r.patientOrder {
		patients = append(patients, r.patients[id])
	}
	return patients
}

// Doctors returns a snapshot of all registered doctors in insertion order.
func (r *Registry) Doctors() []*entity.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctors := make([]*entity.Doctor, 0, len(r.doctorOrder))
	for _, license := range r.doctorOrder {
		doctors = append(doctors, snapshotDoctor(r.doctors[license]))
	}
	return doctors
}

// Appointments returns a snapshot of every appointment ever scheduled,
// clinic-wide, in scheduling order.
func (r *Registry) Appointments() []*entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*entity.Appointment, len(r.appointments))
	copy(appointments, r.appointments)
	return appointments
}

// DoctorByLicense returns the doctor registered under the given license.
func (r *Registry) DoctorByLicense(license string) (*entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.doctors[license]
	if !ok {
		return nil, fmt.Errorf("%w: license %s", ErrDoctorNotFound, license)
	}
	return snapshotDoctor(doctor), nil
}

// snapshotDoctor copies the doctor together with its specialty list so the
// result stays safe to read after the registry lock is released. Specialty
// values never change once built, so cloning the slice header is enough.
func snapshotDoctor(d *entity.Doctor) *entity.Doctor {
	snapshot := *d
	snapshot.Specialties = slices.Clone(d.Specialties)
	return &snapshot
}

// DoctorAvailability resolves the specialty labels the doctor offers for the
// given day spec (a weekday name or a comma-separated list of them).
func (r *Registry) DoctorAvailability(license, daySpec string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.doctors[license]
	if !ok {
		return nil, fmt.Errorf("%w: license %s", ErrDoctorNotFound, license)
	}
	return doctor.SpecialtiesForDay(daySpec), nil
}
