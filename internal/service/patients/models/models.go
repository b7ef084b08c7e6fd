package models

import (
	"errors"
	"time"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid patient status")
)

// Request модели

// RegisterPatientRequest запрос на регистрацию пациента
// Пациент создается выписанным и без палаты: койку он занимает
// только через операцию размещения
type RegisterPatientRequest struct {
	Name          string
	Age           int
	Gender        string
	ContactNumber string
	Address       *string
	Symptoms      *string
	EntryDate     *time.Time // Если не указана, берется текущая дата
}

// UpdatePatientRequest запрос на обновление данных пациента
// Обновляются только переданные поля
type UpdatePatientRequest struct {
	Name          *string
	Age           *int
	Gender        *string
	ContactNumber *string
	Address       *string
	Symptoms      *string
	EntryDate     *time.Time
}

// ListPatientsRequest запрос на получение пациентов госпиталя
type ListPatientsRequest struct {
	Status *string // Фильтр по статусу (опционально)
	RoomID *int64  // Фильтр по палате (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListPatientsRequest) ToDomainFilter(hospitalID int64) (domain.PatientsFilter, error) {
	filter := domain.PatientsFilter{
		HospitalID: hospitalID,
		RoomID:     r.RoomID,
	}

	if r.Status != nil {
		status, err := ToDomainPatientStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// PatientResponse ответ с данными пациента
type PatientResponse struct {
	ID            int64   `json:"id"`
	HospitalID    int64   `json:"hospitalId"`
	RoomID        *int64  `json:"roomId,omitempty"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ContactNumber string  `json:"contactNumber"`
	Address       *string `json:"address,omitempty"`
	Symptoms      *string `json:"symptoms,omitempty"`
	EntryDate     string  `json:"entryDate"`          // "2025-10-15"
	ExitDate      *string `json:"exitDate,omitempty"` // "2025-10-20"
	Status        string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PatientListResponse ответ со списком пациентов
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// Методы конвертации

// FromDomainPatient конвертирует domain модель в DTO
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	if p == nil {
		return nil
	}

	resp := &PatientResponse{
		ID:            p.ID,
		HospitalID:    p.HospitalID,
		RoomID:        p.RoomID,
		Name:          p.Name,
		Age:           p.Age,
		Gender:        p.Gender,
		ContactNumber: p.ContactNumber,
		Address:       p.Address,
		Symptoms:      p.Symptoms,
		EntryDate:     p.EntryDate.Format(domain.DateFormat),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.ExitDate != nil {
		exitStr := p.ExitDate.Format(domain.DateFormat)
		resp.ExitDate = &exitStr
	}

	return resp
}

// FromDomainPatientList конвертирует список domain моделей в DTO
func FromDomainPatientList(patients []*domain.Patient) *PatientListResponse {
	if patients == nil {
		return &PatientListResponse{
			Patients: []PatientResponse{},
		}
	}

	resp := &PatientListResponse{
		Patients: make([]PatientResponse, len(patients)),
	}

	for i, patient := range patients {
		if patientResp := FromDomainPatient(patient); patientResp != nil {
			resp.Patients[i] = *patientResp
		}
	}

	return resp
}

// ToDomainPatientStatus конвертирует строку в domain.PatientStatus с валидацией
func ToDomainPatientStatus(status string) (domain.PatientStatus, error) {
	s := domain.PatientStatus(status)

	for _, valid := range domain.PatientStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
