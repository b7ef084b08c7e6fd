package get_patients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients/models"
)

const (
	msgInvalidStatus = "некорректный статус пациента, ожидается ADMITTED или DISCHARGED"
	msgInvalidRoomID = "некорректный ID палаты"
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

// Handle GET /api/v1/patients?status=ADMITTED&roomId=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /patients - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	// Собираем фильтры из query параметров
	req := &models.ListPatientsRequest{}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	if roomIDStr := r.URL.Query().Get("roomId"); roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /patients - Invalid roomId filter: %s", roomIDStr)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		req.RoomID = &roomID
	}

	result, err := h.service.List(r.Context(), req, scope)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrInvalidInput):
			h.logger.Warn("GET /patients - Invalid status filter: hospital_id=%d, error=%v", scope.HospitalID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /patients - Failed to list patients: hospital_id=%d, error=%v", scope.HospitalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients - Patients retrieved successfully: hospital_id=%d, count=%d",
		scope.HospitalID, len(result.Patients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
