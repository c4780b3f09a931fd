package submit_booking

import (
	"time"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// Request модель запроса на фиксацию заявки
// Поля повторяют заполненный черновик четырехэтапного флоу
type Request struct {
	LengthID string         // ID базовой длины, например "fs-m"
	AddonQty map[string]int // Количества дополнений по ID

	Date domain.DateKey   // Выбранная дата
	Time domain.TimeLabel // Выбранный слот

	CustomerName  string
	ContactMethod string // domain.ContactEmail или domain.ContactPhone
	ContactDetail string // email или телефон в свободной форме
}

// Response модель ответа с зафиксированной бронью
type Response struct {
	ID          int64              // ID записи журнала
	Date        domain.DateKey     // Дата брони
	Time        domain.TimeLabel   // Слот брони
	ServiceName string             // Название базовой услуги
	Items       []domain.PriceLine // Детализация цены
	TotalPrice  int                // Итоговая цена в долларах

	CreatedAt time.Time // Время фиксации
}
