package patients

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден в госпитале вызывающего
	ErrPatientNotFound = errors.New("patient not found")

	// ErrRoomNotFound возвращается, когда палата не найдена в госпитале вызывающего
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateContactNumber возвращается, когда контактный номер уже занят
	ErrDuplicateContactNumber = errors.New("patient with this contact number already exists")

	// ErrCannotUpdateDischarged возвращается при попытке редактировать выписанного пациента
	ErrCannotUpdateDischarged = errors.New("cannot update discharged patient")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("patients service: internal error")
)
