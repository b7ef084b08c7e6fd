package get_hospital_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/service/rooms"
)

const (
	msgHospitalNotFound = "госпиталь не найден"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hospital/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /hospital/occupancy - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	occupancy, err := h.service.GetHospitalOccupancy(r.Context(), scope)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrHospitalNotFound):
			h.logger.Warn("GET /hospital/occupancy - Hospital not found: hospital_id=%d", scope.HospitalID)
			handlers.RespondNotFound(w, msgHospitalNotFound)

		default:
			h.logger.Error("GET /hospital/occupancy - Failed to get occupancy: hospital_id=%d, error=%v",
				scope.HospitalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hospital/occupancy - Occupancy retrieved: hospital_id=%d, occupied=%d/%d",
		scope.HospitalID, occupancy.OccupiedBeds, occupancy.TotalBeds)
	handlers.RespondJSON(w, http.StatusOK, occupancy)
}
