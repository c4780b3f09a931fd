package get_available_dates

import (
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
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

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// Handle GET /api/v1/availability/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dates := h.store.ListAvailableDates(r.Context())

	response := DatesResponse{Dates: make([]string, 0, len(dates))}
	for _, date := range dates {
		response.Dates = append(response.Dates, date.String())
	}

	h.logger.Info("GET /availability/dates - %d available dates", len(dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
