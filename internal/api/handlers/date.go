package handlers

import (
	"time"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// CoerceDateKey приводит дату из запроса к каноническому ключу календаря
// Принимает как YYYY-MM-DD, так и сам канонический ключ; всё остальное
// возвращается как есть и отсеивается валидацией ниже по стеку
func CoerceDateKey(raw string) domain.DateKey {
	if parsed, err := time.Parse(domain.DateFormat, raw); err == nil {
		return domain.NewDateKey(parsed)
	}
	return domain.DateKey(raw)
}
