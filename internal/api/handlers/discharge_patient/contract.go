package discharge_patient

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	dischargePatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/discharge_patient"
)

type DischargePatientUseCase interface {
	Execute(ctx context.Context, req *dischargePatient.Request, scope domain.HospitalScope) (*dischargePatient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
