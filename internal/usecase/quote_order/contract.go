package quote_order

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetCatalogWithGracefulDegradation(ctx context.Context) (domain.Catalog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
