package models

import (
	"time"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными записи журнала бронирований
type BookingResponse struct {
	ID            int64     `json:"id"`
	Date          string    `json:"date"` // "Mon Mar 02 2026"
	Time          string    `json:"time"` // "10:30 AM"
	CustomerName  string    `json:"customerName"`
	ContactMethod string    `json:"contactMethod"`
	ContactDetail string    `json:"contactDetail"`
	ServiceName   string    `json:"serviceName"`
	TotalPrice    int       `json:"totalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком записей журнала
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.BookingEntry) *BookingResponse {
	if e == nil {
		return nil
	}

	return &BookingResponse{
		ID:            e.ID,
		Date:          e.Date.String(),
		Time:          e.Time.String(),
		CustomerName:  e.CustomerName,
		ContactMethod: e.ContactMethod,
		ContactDetail: e.ContactDetail,
		ServiceName:   e.ServiceName,
		TotalPrice:    e.TotalPrice,
		CreatedAt:     e.CreatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в DTO
func FromDomainEntryList(entries []*domain.BookingEntry) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		if entryResp := FromDomainEntry(entry); entryResp != nil {
			resp.Bookings = append(resp.Bookings, *entryResp)
		}
	}

	return resp
}
