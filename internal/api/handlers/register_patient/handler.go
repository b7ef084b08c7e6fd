package register_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/service/patients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты поступления, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные пациента"
	msgDuplicateContact   = "пациент с таким контактным номером уже зарегистрирован"
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

// Handle POST /api/v1/patients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /patients - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	var req RegisterPatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /patients - Failed to parse entry date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	patient, err := h.service.Register(r.Context(), serviceReq, scope)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrInvalidInput):
			h.logger.Warn("POST /patients - Invalid input: contact=%s, error=%v", req.ContactNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, patients.ErrDuplicateContactNumber):
			h.logger.Warn("POST /patients - Duplicate contact number: contact=%s, hospital_id=%d",
				req.ContactNumber, scope.HospitalID)
			handlers.RespondConflict(w, msgDuplicateContact)

		default:
			h.logger.Error("POST /patients - Failed to register patient: contact=%s, error=%v",
				req.ContactNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /patients - Patient registered: patient_id=%d, hospital_id=%d",
		patient.ID, scope.HospitalID)
	handlers.RespondJSON(w, http.StatusCreated, patient)
}
