package get_bookings

import (
	"errors"
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	bookingsService "github.com/fredartois/NBF-BookingService/internal/service/bookings"
	"github.com/fredartois/NBF-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate = "invalid date key"
)

type Handler struct {
	bookings BookingsService
	logger   Logger
}

func NewHandler(bookings BookingsService, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/bookings?date=Mon%20Mar%2002%202026
// Без параметра date возвращает весь журнал (сначала новые)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.BookingListResponse
		err    error
	)

	if raw := r.URL.Query().Get("date"); raw != "" {
		result, err = h.bookings.ListForDate(r.Context(), handlers.CoerceDateKey(raw))
	} else {
		result, err = h.bookings.ListAll(r.Context())
	}

	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidDate):
			h.logger.Warn("GET /admin/bookings - Invalid date filter")
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - %d entries", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
