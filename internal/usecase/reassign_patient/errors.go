package reassign_patient

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("reassign_patient: patient not found")

	// ErrRoomNotFound возвращается, когда палата назначения не найдена
	ErrRoomNotFound = errors.New("reassign_patient: room not found")

	// ErrRoomFull возвращается, когда в палате назначения нет свободных коек
	ErrRoomFull = errors.New("reassign_patient: room is full")

	// ErrSameRoom возвращается при переводе пациента в его текущую палату
	ErrSameRoom = errors.New("reassign_patient: patient is already in this room")

	// ErrScopeViolation возвращается при попытке доступа к чужому госпиталю
	ErrScopeViolation = errors.New("reassign_patient: hospital scope violation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reassign_patient: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reassign_patient: internal error")
)
