package get_calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	"github.com/fredartois/NBF-BookingService/internal/domain"
)

const (
	msgInvalidYear  = "invalid year, expected a four-digit number"
	msgInvalidMonth = "invalid month, expected 1-12"
)

type Handler struct {
	store  AvailabilityStore
	logger Logger
}

func NewHandler(store AvailabilityStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// CellResponse одна ячейка сетки месяца
// Ведущие пустые ячейки имеют day = 0 и пустой ключ
type CellResponse struct {
	Day       int    `json:"day"`
	Key       string `json:"key,omitempty"`
	Available bool   `json:"available"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CellResponse `json:"cells"`

	PrevYear  int `json:"prevYear"`
	PrevMonth int `json:"prevMonth"`
	NextYear  int `json:"nextYear"`
	NextMonth int `json:"nextMonth"`
}

// Handle GET /api/v1/availability/calendar?year=2026&month=3
// Без параметров возвращает сетку текущего месяца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1000 || parsed > 9999 {
			h.logger.Warn("GET /availability/calendar - Invalid year: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			h.logger.Warn("GET /availability/calendar - Invalid month: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = time.Month(parsed)
	}

	available := make(map[domain.DateKey]struct{})
	for _, date := range h.store.ListAvailableDates(r.Context()) {
		available[date] = struct{}{}
	}

	grid := domain.MonthGrid(year, month)
	cells := make([]CellResponse, 0, len(grid))
	for _, cell := range grid {
		_, open := available[cell.Key]
		cells = append(cells, CellResponse{
			Day:       cell.Day,
			Key:       cell.Key.String(),
			Available: !cell.IsBlank() && open,
		})
	}

	prevYear, prevMonth := domain.PrevMonth(year, month)
	nextYear, nextMonth := domain.NextMonth(year, month)

	h.logger.Info("GET /availability/calendar - %d-%02d, %d cells", year, month, len(cells))
	handlers.RespondJSON(w, http.StatusOK, CalendarResponse{
		Year:      year,
		Month:     int(month),
		Cells:     cells,
		PrevYear:  prevYear,
		PrevMonth: int(prevMonth),
		NextYear:  nextYear,
		NextMonth: int(nextMonth),
	})
}
