package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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

// Client клиент сервиса уведомлений
// Работает по схеме fire-and-forget: движок бронирования не требует
// подтверждения доставки, ошибки только логируются
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет сводку бронирования для ручной обработки
// Вызов fire-and-forget: ошибка логируется и НЕ возвращается вызывающему
func (c *Client) Notify(ctx context.Context, summary *domain.BookingSummary) {
	if err := c.send(ctx, summary); err != nil {
		c.log.Error("Notify: failed to deliver booking summary for %s %s: %v",
			summary.Date, summary.Time, err)
		return
	}

	c.log.Info("Notify: booking summary delivered for %s %s", summary.Date, summary.Time)
}

func (c *Client) send(ctx context.Context, summary *domain.BookingSummary) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal summary: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}
