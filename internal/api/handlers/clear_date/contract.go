package clear_date

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type AvailabilityStore interface {
	ClearDate(ctx context.Context, date domain.DateKey) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
