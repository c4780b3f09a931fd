package quote_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_order: invalid input data")

	// ErrUnknownItem возвращается при неизвестном ID позиции каталога
	ErrUnknownItem = errors.New("quote_order: unknown catalog item")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_order: internal error")
)
