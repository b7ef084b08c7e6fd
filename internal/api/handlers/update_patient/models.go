package update_patient

import (
	"time"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

// UpdatePatientRequest HTTP request model
// Обновляются только переданные поля
type UpdatePatientRequest struct {
	Name          *string `json:"name,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Address       *string `json:"address,omitempty"`
	Symptoms      *string `json:"symptoms,omitempty"`
	EntryDate     *string `json:"entryDate,omitempty"` // "2025-10-15"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *UpdatePatientRequest) ToServiceRequest() (*models.UpdatePatientRequest, error) {
	req := &models.UpdatePatientRequest{
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
