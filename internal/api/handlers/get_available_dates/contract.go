package get_available_dates

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type AvailabilityStore interface {
	ListAvailableDates(ctx context.Context) []domain.DateKey
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
