package clear_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/admin/availability/{date}
// Убирает все слоты даты; дата исчезает из списка доступных
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := handlers.CoerceDateKey(mux.Vars(r)["date"])

	if err := h.store.ClearDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/availability/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availabilityService.ErrPersistence):
			h.logger.Error("DELETE /admin/availability/{date} - Persist failed: date=%s, error=%v", date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotSaved)

		default:
			h.logger.Error("DELETE /admin/availability/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/{date} - date=%s cleared", date)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
