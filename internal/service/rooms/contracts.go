package rooms

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
)

// RoomRepository интерфейс репозитория палат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHospital(ctx context.Context, hospitalID int64) ([]*domain.Room, error)
}

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	CountAdmittedByRoom(ctx context.Context, roomID int64) (int, error)
}

// HospitalRepository интерфейс репозитория госпиталей
type HospitalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hospital, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
