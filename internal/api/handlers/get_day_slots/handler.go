package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	"github.com/fredartois/NBF-BookingService/internal/domain"
	bookingsService "github.com/fredartois/NBF-BookingService/internal/service/bookings"
)

const (
	msgInvalidDate = "invalid date key"
)

type Handler struct {
	store    AvailabilityStore
	bookings BookingsService
	logger   Logger
}

func NewHandler(store AvailabilityStore, bookings BookingsService, logger Logger) *Handler {
	return &Handler{
		store:    store,
		bookings: bookings,
		logger:   logger,
	}
}

// SlotResponse один слот дня с признаком занятости
type SlotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// DaySlotsResponse HTTP response model
// Presets это быстрые переключатели для админки
type DaySlotsResponse struct {
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
	Presets []string       `json:"presets"`
}

// Handle GET /api/v1/admin/availability/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := handlers.CoerceDateKey(mux.Vars(r)["date"])

	occupied, err := h.bookings.OccupiedSlots(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidDate):
			h.logger.Warn("GET /admin/availability/{date}/slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/availability/{date}/slots - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	taken := make(map[domain.TimeLabel]struct{}, len(occupied))
	for _, label := range occupied {
		taken[label] = struct{}{}
	}

	slots := h.store.ListSlots(r.Context(), date)
	response := DaySlotsResponse{
		Date:    date.String(),
		Slots:   make([]SlotResponse, 0, len(slots)),
		Presets: make([]string, 0, len(domain.PresetTimeLabels)),
	}
	for _, slot := range slots {
		_, booked := taken[slot]
		response.Slots = append(response.Slots, SlotResponse{Time: slot.String(), Booked: booked})
	}
	for _, preset := range domain.PresetTimeLabels {
		response.Presets = append(response.Presets, preset.String())
	}

	h.logger.Info("GET /admin/availability/{date}/slots - date=%s, %d slots, %d booked",
		date, len(slots), len(occupied))
	handlers.RespondJSON(w, http.StatusOK, response)
}
