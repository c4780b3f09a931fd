package get_open_slots

import "github.com/fredartois/NBF-BookingService/internal/domain"

// Request модель запроса на получение свободных слотов
type Request struct {
	Date domain.DateKey // Ключ даты, например "Mon Mar 02 2026"
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  domain.DateKey     // Дата, на которую запрашивались слоты
	Slots []domain.TimeLabel // Свободные слоты в порядке расписания
}
