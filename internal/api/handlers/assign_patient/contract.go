package assign_patient

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	assignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/assign_patient"
)

type AssignPatientUseCase interface {
	Execute(ctx context.Context, req *assignPatient.Request, scope domain.HospitalScope) (*assignPatient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
