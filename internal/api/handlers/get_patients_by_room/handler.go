package get_patients_by_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients"
)

const (
	msgInvalidRoomID = "некорректный ID палаты"
	msgRoomNotFound  = "палата не найдена"
)

type Handler struct {
	service PatientService
	logger  Logger
}

func NewHandler(service PatientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/room/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /patients/room/{id} - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/room/{id} - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.ListByRoom(r.Context(), roomID, scope)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrRoomNotFound):
			h.logger.Warn("GET /patients/room/{id} - Room not found: room_id=%d, hospital_id=%d",
				roomID, scope.HospitalID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /patients/room/{id} - Failed to list patients: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients/room/{id} - Patients retrieved: room_id=%d, count=%d",
		roomID, len(result.Patients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
