package discharge_patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	dischargePatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/discharge_patient"
)

const (
	msgInvalidPatientID  = "некорректный ID пациента"
	msgPatientNotFound   = "пациент не найден"
	msgAlreadyDischarged = "пациент уже выписан"
	msgScopeViolation    = "доступ к чужому госпиталю запрещен"
)

type Handler struct {
	useCase DischargePatientUseCase
	logger  Logger
}

func NewHandler(useCase DischargePatientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/patients/{patientId}/discharge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /patients/{patientId}/discharge - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /patients/{patientId}/discharge - Invalid patient ID: %s", vars["patientId"])
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &dischargePatient.Request{PatientID: patientID}, scope)
	if err != nil {
		switch {
		case errors.Is(err, dischargePatient.ErrInvalidInput):
			h.logger.Warn("PUT /patients/{patientId}/discharge - Invalid input: patient_id=%d", patientID)
			handlers.RespondBadRequest(w, msgInvalidPatientID)

		case errors.Is(err, dischargePatient.ErrPatientNotFound):
			h.logger.Warn("PUT /patients/{patientId}/discharge - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, dischargePatient.ErrAlreadyDischarged):
			h.logger.Warn("PUT /patients/{patientId}/discharge - Already discharged: patient_id=%d", patientID)
			handlers.RespondConflict(w, msgAlreadyDischarged)

		case errors.Is(err, dischargePatient.ErrScopeViolation):
			h.logger.Warn("PUT /patients/{patientId}/discharge - Scope violation: patient_id=%d, hospital_id=%d",
				patientID, scope.HospitalID)
			handlers.RespondForbidden(w, msgScopeViolation)

		default:
			h.logger.Error("PUT /patients/{patientId}/discharge - Failed to discharge patient: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /patients/{patientId}/discharge - Patient discharged: patient_id=%d, room_id=%d, occupied=%d/%d",
		patientID, result.RoomID, result.OccupiedBeds, result.TotalBeds)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
