package userservice

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошел валидацию
	ErrInvalidToken = errors.New("userservice client: invalid token")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
