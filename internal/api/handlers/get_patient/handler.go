package get_patient

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
	msgInvalidPatientID = "некорректный ID пациента"
	msgPatientNotFound  = "пациент не найден"
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

// Handle GET /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /patients/{id} - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id} - Invalid patient ID: %s", vars["patientId"])
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	patient, err := h.service.GetByID(r.Context(), patientID, scope)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("GET /patients/{id} - Patient not found: patient_id=%d, hospital_id=%d",
				patientID, scope.HospitalID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		default:
			h.logger.Error("GET /patients/{id} - Failed to get patient: patient_id=%d, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients/{id} - Patient retrieved successfully: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, patient)
}
