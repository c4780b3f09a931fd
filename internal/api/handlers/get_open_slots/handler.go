package get_open_slots

import (
	"errors"
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	getOpenSlots "github.com/fredartois/NBF-BookingService/internal/usecase/get_open_slots"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD or a calendar key like \"Mon Mar 02 2026\""
)

type Handler struct {
	useCase GetOpenSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOpenSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handle GET /api/v1/availability/open-slots?date=2026-03-02
// Дата принимается как YYYY-MM-DD или как канонический ключ календаря
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := handlers.CoerceDateKey(r.URL.Query().Get("date"))

	result, err := h.useCase.Execute(r.Context(), &getOpenSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getOpenSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/open-slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/open-slots - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := SlotsResponse{
		Date:  result.Date.String(),
		Slots: make([]string, 0, len(result.Slots)),
	}
	for _, slot := range result.Slots {
		response.Slots = append(response.Slots, slot.String())
	}

	h.logger.Info("GET /availability/open-slots - date=%s, %d open slots", date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
