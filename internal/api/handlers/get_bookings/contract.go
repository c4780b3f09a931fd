package get_bookings

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
	"github.com/fredartois/NBF-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ListAll(ctx context.Context) (*models.BookingListResponse, error)
	ListForDate(ctx context.Context, date domain.DateKey) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
