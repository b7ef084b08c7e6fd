package get_patient

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

type PatientService interface {
	GetByID(ctx context.Context, patientID int64, scope domain.HospitalScope) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
