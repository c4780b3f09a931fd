package availability

import "errors"

var (
	// ErrPersistence возвращается, когда мутация не сохранилась в хранилище
	// Вызывающий код обязан считать операцию НЕ применённой
	ErrPersistence = errors.New("availability.service: failed to persist mutation")

	// ErrInvalidDate возвращается при пустом или некорректном ключе даты
	ErrInvalidDate = errors.New("availability.service: invalid date key")

	// ErrInvalidTimeInput возвращается при некорректном вводе кастомного времени
	ErrInvalidTimeInput = errors.New("availability.service: invalid custom time input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability.service: internal error")
)
