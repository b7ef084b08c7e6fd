package get_room_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID палаты"
	msgRoomNotFound  = "палата не найдена"
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

// Handle GET /api/v1/rooms/{roomId}/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /rooms/{id}/occupancy - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/occupancy - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	occupancy, err := h.service.GetOccupancy(r.Context(), roomID, scope)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/occupancy - Room not found: room_id=%d, hospital_id=%d",
				roomID, scope.HospitalID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/occupancy - Failed to get occupancy: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/occupancy - Occupancy retrieved: room_id=%d, occupied=%d/%d",
		roomID, occupancy.OccupiedBeds, occupancy.TotalBeds)
	handlers.RespondJSON(w, http.StatusOK, occupancy)
}
