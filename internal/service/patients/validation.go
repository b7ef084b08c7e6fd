package patients

import (
	"fmt"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

// validateRegisterRequest валидирует запрос на регистрацию пациента
func validateRegisterRequest(req *models.RegisterPatientRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Age < domain.MinAge || req.Age > domain.MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, domain.MinAge, domain.MaxAge)
	}

	if req.Gender == "" {
		return fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}
	if len(req.Gender) > domain.MaxGenderLength {
		return fmt.Errorf("%w: gender is too long", ErrInvalidInput)
	}

	if req.ContactNumber == "" {
		return fmt.Errorf("%w: contactNumber is required", ErrInvalidInput)
	}
	if len(req.ContactNumber) > domain.MaxContactNumberLength {
		return fmt.Errorf("%w: contactNumber is too long", ErrInvalidInput)
	}

	if req.Address != nil && len(*req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if req.Symptoms != nil && len(*req.Symptoms) > domain.MaxSymptomsLength {
		return fmt.Errorf("%w: symptoms is too long", ErrInvalidInput)
	}

	return nil
}

// validatePatient валидирует состояние пациента после применения обновлений
func validatePatient(p *domain.Patient) error {
	if p.Name == "" || len(p.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: invalid name", ErrInvalidInput)
	}

	if p.Age < domain.MinAge || p.Age > domain.MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, domain.MinAge, domain.MaxAge)
	}

	if p.Gender == "" || len(p.Gender) > domain.MaxGenderLength {
		return fmt.Errorf("%w: invalid gender", ErrInvalidInput)
	}

	if p.ContactNumber == "" || len(p.ContactNumber) > domain.MaxContactNumberLength {
		return fmt.Errorf("%w: invalid contactNumber", ErrInvalidInput)
	}

	if p.Address != nil && len(*p.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if p.Symptoms != nil && len(*p.Symptoms) > domain.MaxSymptomsLength {
		return fmt.Errorf("%w: symptoms is too long", ErrInvalidInput)
	}

	return nil
}
