package get_catalog

import (
	"context"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type CatalogServiceClient interface {
	GetCatalogWithGracefulDegradation(ctx context.Context) (domain.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
