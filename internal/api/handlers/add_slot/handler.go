package add_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	"github.com/fredartois/NBF-BookingService/internal/domain"
	availabilityService "github.com/fredartois/NBF-BookingService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date key"
	msgInvalidTime        = "invalid time input"
	msgMissingTime        = "either time or customTime with period is required"
	msgNotSaved           = "the change was not saved, try again"
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

// AddSlotRequest HTTP request model
// Либо готовая метка из пресетов (time), либо свободный ввод с маркером
// периода (customTime + period)
type AddSlotRequest struct {
	Time       string `json:"time,omitempty"`       // "09:00 AM"
	CustomTime string `json:"customTime,omitempty"` // "930"
	Period     string `json:"period,omitempty"`     // "AM" или "PM"
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handle POST /api/v1/admin/availability/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := handlers.CoerceDateKey(mux.Vars(r)["date"])

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/{date}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var err error
	switch {
	case req.Time != "":
		err = h.store.SetSlot(r.Context(), date, domain.TimeLabel(req.Time))
	case req.CustomTime != "":
		_, err = h.store.SetCustomSlot(r.Context(), date, req.CustomTime, req.Period)
	default:
		h.logger.Warn("POST /admin/availability/{date}/slots - Missing time: date=%s", date)
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidDate):
			h.logger.Warn("POST /admin/availability/{date}/slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availabilityService.ErrInvalidTimeInput):
			h.logger.Warn("POST /admin/availability/{date}/slots - Invalid time input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, availabilityService.ErrPersistence):
			h.logger.Error("POST /admin/availability/{date}/slots - Persist failed: date=%s, error=%v", date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotSaved)

		default:
			h.logger.Error("POST /admin/availability/{date}/slots - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := h.store.ListSlots(r.Context(), date)
	response := SlotsResponse{Date: date.String(), Slots: make([]string, 0, len(slots))}
	for _, slot := range slots {
		response.Slots = append(response.Slots, slot.String())
	}

	h.logger.Info("POST /admin/availability/{date}/slots - date=%s now has %d slots", date, len(slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
