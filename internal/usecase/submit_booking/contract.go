package submit_booking

import (
	"context"
	"time"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// LedgerRepository интерфейс репозитория журнала бронирований
type LedgerRepository interface {
	Append(ctx context.Context, entry *domain.BookingEntry) (*domain.BookingEntry, error)
	ListForDate(ctx context.Context, date domain.DateKey) ([]*domain.BookingEntry, error)
}

// AvailabilityStore интерфейс хранилища доступности
type AvailabilityStore interface {
	ListSlots(ctx context.Context, date domain.DateKey) []domain.TimeLabel
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetCatalogWithGracefulDegradation(ctx context.Context) (domain.Catalog, error)
}

// NotifierClient интерфейс клиента уведомлений
// Уведомление отправляется по принципу fire-and-forget: ошибки доставки
// логируются клиентом и не влияют на результат бронирования
type NotifierClient interface {
	Notify(ctx context.Context, summary *domain.BookingSummary)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
