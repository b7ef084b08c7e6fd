package patients

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
)

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByContactNumber(ctx context.Context, hospitalID int64, contactNumber string) (*domain.Patient, error)
	ListWithFilter(ctx context.Context, filter domain.PatientsFilter) ([]*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
}

// RoomRepository интерфейс репозитория палат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
