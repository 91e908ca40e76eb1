package entity

// ClinicalHistory is the append-only per-patient log of appointments and
// prescriptions. It exists if and only if its patient is registered and is
// created together with the patient. It stores records built by the
// registry; it never constructs them itself.
type ClinicalHistory struct {
	Patient       *Patient        `json:"patient"`
	Appointments  []*Appointment  `json:"appointments"`
	Prescriptions []*Prescription `json:"prescriptions"`
}

func NewClinicalHistory(patient *Patient) *ClinicalHistory {
	return &ClinicalHistory{
		Patient:       patient,
		Appointments:  []*Appointment{},
		Prescriptions: []*Prescription{},
	}
}

func (h *ClinicalHistory) AddAppointment(a *Appointment) {
	h.Appointments = append(h.Appointments, a)
}

func (h *ClinicalHistory) AddPrescription(p *Prescription) {
	h.Prescriptions = append(h.Prescriptions, p)
}
