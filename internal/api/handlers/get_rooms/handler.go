package get_rooms

import (
	"net/http"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
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

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /rooms - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	rooms, err := h.service.List(r.Context(), scope)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: hospital_id=%d, error=%v", scope.HospitalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: hospital_id=%d, count=%d",
		scope.HospitalID, len(rooms.Rooms))
	handlers.RespondJSON(w, http.StatusOK, rooms)
}
