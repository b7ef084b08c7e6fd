package assign_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	assignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/assign_patient"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgPatientNotFound    = "пациент не найден"
	msgRoomNotFound       = "палата не найдена"
	msgRoomFull           = "в палате нет свободных коек"
	msgAlreadyAdmitted    = "пациент уже размещен в палате"
	msgScopeViolation     = "доступ к чужому госпиталю запрещен"
)

type Handler struct {
	useCase AssignPatientUseCase
	logger  Logger
}

func NewHandler(useCase AssignPatientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /rooms/assign - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	var req AssignPatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(), scope)
	if err != nil {
		switch {
		case errors.Is(err, assignPatient.ErrInvalidInput):
			h.logger.Warn("POST /rooms/assign - Invalid input: patient_id=%d, room_id=%d", req.PatientID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, assignPatient.ErrPatientNotFound):
			h.logger.Warn("POST /rooms/assign - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, assignPatient.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/assign - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, assignPatient.ErrRoomFull):
			h.logger.Warn("POST /rooms/assign - Room is full: room_id=%d, patient_id=%d", req.RoomID, req.PatientID)
			handlers.RespondConflict(w, msgRoomFull)

		case errors.Is(err, assignPatient.ErrAlreadyAdmitted):
			h.logger.Warn("POST /rooms/assign - Patient already admitted: patient_id=%d", req.PatientID)
			handlers.RespondConflict(w, msgAlreadyAdmitted)

		case errors.Is(err, assignPatient.ErrScopeViolation):
			h.logger.Warn("POST /rooms/assign - Scope violation: patient_id=%d, room_id=%d, hospital_id=%d",
				req.PatientID, req.RoomID, scope.HospitalID)
			handlers.RespondForbidden(w, msgScopeViolation)

		default:
			h.logger.Error("POST /rooms/assign - Failed to assign patient: patient_id=%d, room_id=%d, error=%v",
				req.PatientID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/assign - Patient assigned: patient_id=%d, room_id=%d, occupied=%d/%d",
		req.PatientID, result.RoomID, result.OccupiedBeds, result.TotalBeds)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
