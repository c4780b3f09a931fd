package create_booking

import (
	"errors"
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	submitBooking "github.com/fredartois/NBF-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDraftIncomplete    = "booking details are incomplete"
	msgUnknownLength      = "unknown length tier"
	msgSlotConflict       = "the selected time slot is no longer available"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSlotConflict):
			// Конфликт не стирает черновик: клиент выбирает другой слот
			h.logger.Warn("POST /bookings - Slot conflict: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, submitBooking.ErrDraftIncomplete):
			h.logger.Warn("POST /bookings - Draft incomplete: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgDraftIncomplete)

		case errors.Is(err, submitBooking.ErrUnknownLength):
			h.logger.Warn("POST /bookings - Unknown length tier: %q", req.LengthID)
			handlers.RespondBadRequest(w, msgUnknownLength)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
