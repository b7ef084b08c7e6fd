package domain

import "time"

// PatientStatus represents the admission status of a patient
type PatientStatus string

const (
	StatusAdmitted   PatientStatus = "ADMITTED"
	StatusDischarged PatientStatus = "DISCHARGED"
)

// Patient represents a patient registered in a hospital
type Patient struct {
	ID         int64
	HospitalID int64
	RoomID     *int64 // nil, пока пациент не размещен в палате

	Name          string
	Age           int
	Gender        string
	ContactNumber string
	Address       *string
	Symptoms      *string

	EntryDate time.Time
	ExitDate  *time.Time // заполняется при выписке
	Status    PatientStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmitted returns true if the patient currently occupies a bed
func (p *Patient) IsAdmitted() bool {
	return p.Status == StatusAdmitted
}

// IsDischarged returns true if the patient has been discharged
func (p *Patient) IsDischarged() bool {
	return p.Status == StatusDischarged
}

// InRoom returns true if the patient is currently placed in the given room
func (p *Patient) InRoom(roomID int64) bool {
	return p.RoomID != nil && *p.RoomID == roomID
}

// PatientsFilter фильтр для получения пациентов госпиталя
type PatientsFilter struct {
	HospitalID int64          // Обязательный параметр
	RoomID     *int64         // Фильтр по палате (опционально)
	Status     *PatientStatus // Фильтр по статусу (опционально)
}
