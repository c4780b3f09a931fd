package bookings

import "errors"

var (
	// ErrInvalidDate возвращается при пустом или некорректном ключе даты
	ErrInvalidDate = errors.New("invalid date key")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
