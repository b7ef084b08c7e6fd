package reassign_patient

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	reassignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/reassign_patient"
)

type ReassignPatientUseCase interface {
	Execute(ctx context.Context, req *reassignPatient.Request, scope domain.HospitalScope) (*reassignPatient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
