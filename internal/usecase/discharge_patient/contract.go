package discharge_patient

import (
	"context"
	"time"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
)

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	CountAdmittedByRoom(ctx context.Context, roomID int64) (int, error)
	Discharge(ctx context.Context, id int64, exitDate time.Time) error
}

// RoomRepository интерфейс репозитория палат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// HospitalRepository интерфейс репозитория госпиталей
type HospitalRepository interface {
	DecrementOccupiedBeds(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
