package remove_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	"github.com/fredartois/NBF-BookingService/internal/domain"
	availabilityService "github.com/fredartois/NBF-BookingService/internal/service/availability"
)

const (
	msgInvalidDate = "invalid date key"
	msgNotSaved    = "the change was not saved, try again"
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

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handle DELETE /api/v1/admin/availability/{date}/slots/{time}
// Удаление отсутствующего слота - no-op, не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := handlers.CoerceDateKey(vars["date"])
	label := domain.TimeLabel(vars["time"])

	if err := h.store.UnsetSlot(r.Context(), date, label); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/availability/{date}/slots/{time} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availabilityService.ErrPersistence):
			h.logger.Error("DELETE /admin/availability/{date}/slots/{time} - Persist failed: date=%s, error=%v", date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotSaved)

		default:
			h.logger.Error("DELETE /admin/availability/{date}/slots/{time} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := h.store.ListSlots(r.Context(), date)
	response := SlotsResponse{Date: date.String(), Slots: make([]string, 0, len(slots))}
	for _, slot := range slots {
		response.Slots = append(response.Slots, slot.String())
	}

	h.logger.Info("DELETE /admin/availability/{date}/slots/{time} - date=%s, time=%s, %d slots left",
		date, label, len(slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
