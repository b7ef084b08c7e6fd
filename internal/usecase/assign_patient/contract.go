package assign_patient

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
)

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	CountAdmittedByRoom(ctx context.Context, roomID int64) (int, error)
	Admit(ctx context.Context, id int64, roomID int64) error
}

// RoomRepository интерфейс репозитория палат
type RoomRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error)
}

// HospitalRepository интерфейс репозитория госпиталей
type HospitalRepository interface {
	IncrementOccupiedBeds(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
