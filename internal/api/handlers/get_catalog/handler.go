package get_catalog

import (
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type Handler struct {
	catalogClient CatalogServiceClient
	logger        Logger
}

func NewHandler(catalogClient CatalogServiceClient, logger Logger) *Handler {
	return &Handler{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// ItemResponse одна позиция каталога услуг
type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameFr      string `json:"nameFr"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Group       string `json:"group"`
	Kind        string `json:"kind,omitempty"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Lengths []ItemResponse `json:"lengths"`
	Addons  []ItemResponse `json:"addons"`
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogClient.GetCatalogWithGracefulDegradation(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to get catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := CatalogResponse{
		Lengths: toItemResponses(catalog.Lengths()),
		Addons:  toItemResponses(catalog.Addons()),
	}

	h.logger.Info("GET /catalog - %d lengths, %d addons", len(response.Lengths), len(response.Addons))
	handlers.RespondJSON(w, http.StatusOK, response)
}

func toItemResponses(items []domain.ServiceCatalogItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			NameFr:      item.NameFr,
			Description: item.Description,
			Price:       item.Price,
			Duration:    item.Duration,
			Group:       string(item.Group),
			Kind:        string(item.Kind),
		})
	}
	return out
}
