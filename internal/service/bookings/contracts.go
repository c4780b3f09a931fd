package bookings

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// LedgerRepository интерфейс репозитория журнала бронирований
// Сервис читает журнал; запись в журнал выполняет use case создания брони
type LedgerRepository interface {
	ListForDate(ctx context.Context, date domain.DateKey) ([]*domain.BookingEntry, error)
	List(ctx context.Context) ([]*domain.BookingEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
