package assign_patient

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("assign_patient: patient not found")

	// ErrRoomNotFound возвращается, когда палата не найдена
	ErrRoomNotFound = errors.New("assign_patient: room not found")

	// ErrRoomFull возвращается, когда в палате нет свободных коек
	ErrRoomFull = errors.New("assign_patient: room is full")

	// ErrAlreadyAdmitted возвращается при попытке разместить уже размещенного пациента
	// Смена палаты выполняется через reassign
	ErrAlreadyAdmitted = errors.New("assign_patient: patient is already admitted")

	// ErrScopeViolation возвращается при попытке доступа к чужому госпиталю
	ErrScopeViolation = errors.New("assign_patient: hospital scope violation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_patient: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_patient: internal error")
)
