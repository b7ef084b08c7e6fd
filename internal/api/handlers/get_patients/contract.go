package get_patients

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

type PatientService interface {
	List(ctx context.Context, req *models.ListPatientsRequest, scope domain.HospitalScope) (*models.PatientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
