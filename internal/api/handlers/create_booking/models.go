package create_booking

import (
	"time"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	"github.com/fredartois/NBF-BookingService/internal/domain"
	submitBooking "github.com/fredartois/NBF-BookingService/internal/usecase/submit_booking"
)

// CreateBookingRequest HTTP request model
// Повторяет заполненный черновик четырехэтапного флоу
type CreateBookingRequest struct {
	LengthID string         `json:"lengthId"`
	Addons   map[string]int `json:"addons,omitempty"`

	Date string `json:"date"` // "Mon Mar 02 2026" или "2026-03-02"
	Time string `json:"time"` // "10:30 AM"

	CustomerName  string `json:"customerName"`
	ContactMethod string `json:"contactMethod"` // "email" или "phone"
	ContactDetail string `json:"contactDetail"`
}

// PriceLineResponse одна строка детализации цены
type PriceLineResponse struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
	Amount int    `json:"amount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64               `json:"id"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	ServiceName string              `json:"serviceName"`
	Items       []PriceLineResponse `json:"items"`
	TotalPrice  int                 `json:"totalPrice"`
	CreatedAt   string              `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		LengthID:      r.LengthID,
		AddonQty:      r.Addons,
		Date:          handlers.CoerceDateKey(r.Date),
		Time:          domain.TimeLabel(r.Time),
		CustomerName:  r.CustomerName,
		ContactMethod: r.ContactMethod,
		ContactDetail: r.ContactDetail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	items := make([]PriceLineResponse, 0, len(resp.Items))
	for _, line := range resp.Items {
		items = append(items, PriceLineResponse{
			ItemID: line.ItemID,
			Name:   line.Name,
			Qty:    line.Qty,
			Amount: line.Amount,
		})
	}

	return &BookingResponse{
		ID:          resp.ID,
		Date:        resp.Date.String(),
		Time:        resp.Time.String(),
		ServiceName: resp.ServiceName,
		Items:       items,
		TotalPrice:  resp.TotalPrice,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
