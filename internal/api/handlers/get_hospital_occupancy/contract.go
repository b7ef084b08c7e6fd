package get_hospital_occupancy

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/rooms/models"
)

type RoomService interface {
	GetHospitalOccupancy(ctx context.Context, scope domain.HospitalScope) (*models.HospitalOccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
