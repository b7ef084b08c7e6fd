package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда палата не найдена в госпитале вызывающего
	ErrRoomNotFound = errors.New("room not found")

	// ErrHospitalNotFound возвращается, когда госпиталь не найден
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms service: internal error")
)
