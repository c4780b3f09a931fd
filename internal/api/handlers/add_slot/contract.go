package add_slot

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type AvailabilityStore interface {
	SetSlot(ctx context.Context, date domain.DateKey, label domain.TimeLabel) error
	SetCustomSlot(ctx context.Context, date domain.DateKey, raw string, period string) (domain.TimeLabel, error)
	ListSlots(ctx context.Context, date domain.DateKey) []domain.TimeLabel
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
