package availability

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// Repository интерфейс репозитория календаря доступности
// Контракт узкий: загрузка всей записи и её полная замена
type Repository interface {
	Load(ctx context.Context) (domain.AvailabilityRecord, error)
	Replace(ctx context.Context, record domain.AvailabilityRecord) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
