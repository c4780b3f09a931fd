package quote_order

import "github.com/fredartois/NBF-BookingService/internal/domain"

// Request модель запроса на расчет цены черновика
type Request struct {
	LengthID string         // ID базовой длины (опционально на ранних этапах)
	AddonQty map[string]int // Количества дополнений по ID
}

// Response модель ответа с детализацией цены
type Response struct {
	ServiceName string             // Название базовой услуги (пустое, если длина не выбрана)
	Items       []domain.PriceLine // Детализация по дополнениям
	TotalPrice  int                // Итоговая цена в долларах
}
