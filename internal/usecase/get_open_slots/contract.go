package get_open_slots

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// AvailabilityStore интерфейс хранилища доступности
type AvailabilityStore interface {
	ListSlots(ctx context.Context, date domain.DateKey) []domain.TimeLabel
}

// BookingsService интерфейс сервиса журнала бронирований
type BookingsService interface {
	OccupiedSlots(ctx context.Context, date domain.DateKey) ([]domain.TimeLabel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
