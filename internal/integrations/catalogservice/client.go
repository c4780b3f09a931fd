package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CatalogService
// Каталог принадлежит внешнему сервису и для движка бронирования read-only
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCatalog получает актуальный каталог услуг
func (c *Client) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	url := fmt.Sprintf("%s/internal/catalog", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var items []CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomainCatalog(items), nil
}

// GetCatalogWithGracefulDegradation получает каталог с graceful degradation
// При недоступности CatalogService возвращает встроенный каталог студии,
// чтобы бронирование продолжало работать на базовых ценах
// Деградация для вызывающего кода прозрачна: ошибка только логируется
func (c *Client) GetCatalogWithGracefulDegradation(ctx context.Context) (domain.Catalog, error) {
	catalog, err := c.GetCatalog(ctx)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("%v: falling back to built-in catalog: %v", ErrServiceDegraded, err)
		return domain.DefaultCatalog(), nil
	}

	c.log.Info("Successfully fetched catalog, %d items", len(catalog))
	return catalog, nil
}

// toDomainCatalog конвертирует ответ сервиса в доменный каталог
func toDomainCatalog(items []CatalogItem) domain.Catalog {
	catalog := make(domain.Catalog, 0, len(items))
	for _, item := range items {
		catalog = append(catalog, domain.ServiceCatalogItem{
			ID:          item.ID,
			Name:        item.Name,
			NameFr:      item.NameFr,
			Description: item.Description,
			Price:       item.Price,
			Duration:    item.Duration,
			Group:       domain.ItemGroup(item.Group),
			Kind:        domain.ItemKind(item.Kind),
		})
	}
	return catalog
}
