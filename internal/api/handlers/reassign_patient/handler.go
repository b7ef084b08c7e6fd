package reassign_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	reassignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/reassign_patient"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgPatientNotFound    = "пациент не найден"
	msgRoomNotFound       = "палата назначения не найдена"
	msgRoomFull           = "в палате назначения нет свободных коек"
	msgSameRoom           = "пациент уже находится в этой палате"
	msgScopeViolation     = "доступ к чужому госпиталю запрещен"
)

type Handler struct {
	useCase ReassignPatientUseCase
	logger  Logger
}

func NewHandler(useCase ReassignPatientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/reassign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /rooms/reassign - Missing hospital scope in context")
		handlers.RespondInternalError(w)
		return
	}

	var req ReassignPatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/reassign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(), scope)
	if err != nil {
		switch {
		case errors.Is(err, reassignPatient.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/reassign - Invalid input: patient_id=%d, new_room_id=%d", req.PatientID, req.NewRoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reassignPatient.ErrPatientNotFound):
			h.logger.Warn("PUT /rooms/reassign - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, reassignPatient.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/reassign - Room not found: new_room_id=%d", req.NewRoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, reassignPatient.ErrRoomFull):
			h.logger.Warn("PUT /rooms/reassign - Room is full: new_room_id=%d, patient_id=%d", req.NewRoomID, req.PatientID)
			handlers.RespondConflict(w, msgRoomFull)

		case errors.Is(err, reassignPatient.ErrSameRoom):
			h.logger.Warn("PUT /rooms/reassign - Patient already in room: patient_id=%d, room_id=%d", req.PatientID, req.NewRoomID)
			handlers.RespondConflict(w, msgSameRoom)

		case errors.Is(err, reassignPatient.ErrScopeViolation):
			h.logger.Warn("PUT /rooms/reassign - Scope violation: patient_id=%d, new_room_id=%d, hospital_id=%d",
				req.PatientID, req.NewRoomID, scope.HospitalID)
			handlers.RespondForbidden(w, msgScopeViolation)

		default:
			h.logger.Error("PUT /rooms/reassign - Failed to reassign patient: patient_id=%d, new_room_id=%d, error=%v",
				req.PatientID, req.NewRoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/reassign - Patient reassigned: patient_id=%d, room_id=%d, readmitted=%t, occupied=%d/%d",
		req.PatientID, result.RoomID, result.Readmitted, result.OccupiedBeds, result.TotalBeds)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
