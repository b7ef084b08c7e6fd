package register_patient

import (
	"time"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

// RegisterPatientRequest HTTP request model
type RegisterPatientRequest struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ContactNumber string  `json:"contactNumber"`
	Address       *string `json:"address,omitempty"`
	Symptoms      *string `json:"symptoms,omitempty"`
	EntryDate     *string `json:"entryDate,omitempty"` // "2025-10-15", по умолчанию текущая дата
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *RegisterPatientRequest) ToServiceRequest() (*models.RegisterPatientRequest, error) {
	req := &models.RegisterPatientRequest{
		Name:          r.Name,
		Age:           r.Age,
		Gender:        r.Gender,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		Symptoms:      r.Symptoms,
	}

	if r.EntryDate != nil {
		entryDate, err := time.Parse(domain.DateFormat, *r.EntryDate)
		if err != nil {
			return nil, err
		}
		req.EntryDate = &entryDate
	}

	return req, nil
}
