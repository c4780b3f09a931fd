package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrDraftIncomplete возвращается, когда черновик заявки не прошел
	// все этапы (длина, дата, время или контактные данные не заполнены)
	ErrDraftIncomplete = errors.New("submit_booking: draft is incomplete")

	// ErrUnknownLength возвращается, когда выбранная длина отсутствует в каталоге
	ErrUnknownLength = errors.New("submit_booking: unknown length tier")

	// ErrSlotConflict возвращается, когда выбранный слот занят или закрыт
	// на момент фиксации. Черновик при этом сохраняется: клиент выбирает
	// другой слот, не теряя остальных данных
	ErrSlotConflict = errors.New("submit_booking: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
