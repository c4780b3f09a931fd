package quote_order

import (
	"context"
	"fmt"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// UseCase use case расчета цены черновика заявки
// Цена всегда пересчитывается с нуля по каталогу, ничего не кэшируется
type UseCase struct {
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogClient CatalogServiceClient, logger Logger) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	catalog, err := uc.catalogClient.GetCatalogWithGracefulDegradation(ctx)
	if err != nil {
		uc.logger.Error("QuoteOrder: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	serviceName := ""
	if req.LengthID != "" {
		item := catalog.FindByID(req.LengthID)
		if item == nil || item.Group != domain.GroupLength {
			uc.logger.Warn("QuoteOrder: unknown length tier %q", req.LengthID)
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, req.LengthID)
		}
		serviceName = item.Name
	}

	// Количества приводим к допустимым диапазонам позиций каталога
	addonQty := make(map[string]int, len(req.AddonQty))
	for id, qty := range req.AddonQty {
		item := catalog.FindByID(id)
		if item == nil || item.Group != domain.GroupAddon {
			uc.logger.Warn("QuoteOrder: unknown addon %q", id)
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
		}
		addonQty[id] = domain.ClampQuantity(item.Kind, qty)
	}

	total, items := domain.ComputeTotal(catalog, req.LengthID, addonQty)

	uc.logger.Info("QuoteOrder: length=%s, %d addon lines, total=%d$",
		req.LengthID, len(items), total)

	return &Response{
		ServiceName: serviceName,
		Items:       items,
		TotalPrice:  total,
	}, nil
}
