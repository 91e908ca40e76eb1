package entity

import "time"

// Appointment is an immutable booking linking a patient, a doctor, a
// timestamp and the requested specialty label. Patient and Doctor are
// non-owning back-references used for display and queries only.
type Appointment struct {
	Patient   *Patient  `json:"patient"`
	Doctor    *Doctor   `json:"doctor"`
	DateTime  time.Time `json:"date_time"`
	Specialty string    `json:"specialty"`
}

// NewAppointment is a plain data constructor; validation happens in the
// registry before it is called.
func NewAppointment(patient *Patient, doctor *Doctor, dateTime time.Time, specialty string) *Appointment {
	return &Appointment{
		Patient:   patient,
		Doctor:    doctor,
		DateTime:  dateTime,
		Specialty: specialty,
	}
}
