package get_day_slots

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type AvailabilityStore interface {
	ListSlots(ctx context.Context, date domain.DateKey) []domain.TimeLabel
}

type BookingsService interface {
	OccupiedSlots(ctx context.Context, date domain.DateKey) ([]domain.TimeLabel, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
