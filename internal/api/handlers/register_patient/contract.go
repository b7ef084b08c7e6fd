package register_patient

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

type PatientService interface {
	Register(ctx context.Context, req *models.RegisterPatientRequest, scope domain.HospitalScope) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
