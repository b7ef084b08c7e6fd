package update_patient

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
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidPatientID      = "некорректный ID пациента"
	msgInvalidDate           = "некорректный формат даты поступления, ожидается YYYY-MM-DD"
	msgInvalidInput          = "некорректные данные пациента"
	msgPatientNotFound       = "пациент не найден"
	msgDuplicateContact      = "пациент с таким контактным номером уже зарегистрирован"
	msgCannotUpdateDischarge = "выписанный пациент не редактируется"
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

// Handle PUT /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /patients/{id} - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /patients/{id} - Invalid patient ID: %s", vars["patientId"])
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	var req UpdatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /patients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /patients/{id} - Failed to parse entry date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	patient, err := h.service.Update(r.Context(), patientID, serviceReq, scope)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("PUT /patients/{id} - Patient not found: patient_id=%d, hospital_id=%d",
				patientID, scope.HospitalID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, patients.ErrInvalidInput):
			h.logger.Warn("PUT /patients/{id} - Invalid input: patient_id=%d, error=%v", patientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, patients.ErrDuplicateContactNumber):
			h.logger.Warn("PUT /patients/{id} - Duplicate contact number: patient_id=%d", patientID)
			handlers.RespondConflict(w, msgDuplicateContact)

		case errors.Is(err, patients.ErrCannotUpdateDischarged):
			h.logger.Warn("PUT /patients/{id} - Patient is discharged: patient_id=%d", patientID)
			handlers.RespondConflict(w, msgCannotUpdateDischarge)

		default:
			h.logger.Error("PUT /patients/{id} - Failed to update patient: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /patients/{id} - Patient updated successfully: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, patient)
}
