package get_room

import (
	"context"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/service/rooms/models"
)

type RoomService interface {
	GetByID(ctx context.Context, roomID int64, scope domain.HospitalScope) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
