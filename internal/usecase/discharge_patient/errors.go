package discharge_patient

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("discharge_patient: patient not found")

	// ErrAlreadyDischarged возвращается при повторной выписке пациента
	// Повторная выписка - конфликт, а не тихий no-op: вызывающий должен увидеть ошибку
	ErrAlreadyDischarged = errors.New("discharge_patient: patient is already discharged")

	// ErrScopeViolation возвращается при попытке доступа к чужому госпиталю
	ErrScopeViolation = errors.New("discharge_patient: hospital scope violation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("discharge_patient: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("discharge_patient: internal error")
)
