package quote_order

import (
	"errors"
	"net/http"

	"github.com/fredartois/NBF-BookingService/internal/api/handlers"
	quoteOrder "github.com/fredartois/NBF-BookingService/internal/usecase/quote_order"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownItem        = "unknown catalog item"
)

type Handler struct {
	useCase QuoteOrderUseCase
	logger  Logger
}

func NewHandler(useCase QuoteOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// QuoteRequest HTTP request model
type QuoteRequest struct {
	LengthID string         `json:"lengthId"`
	Addons   map[string]int `json:"addons"`
}

// PriceLineResponse одна строка детализации цены
type PriceLineResponse struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
	Amount int    `json:"amount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ServiceName string              `json:"serviceName,omitempty"`
	Items       []PriceLineResponse `json:"items"`
	TotalPrice  int                 `json:"totalPrice"`
}

// Handle POST /api/v1/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteOrder.Request{
		LengthID: req.LengthID,
		AddonQty: req.Addons,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteOrder.ErrUnknownItem):
			h.logger.Warn("POST /quote - Unknown catalog item: %v", err)
			handlers.RespondBadRequest(w, msgUnknownItem)

		case errors.Is(err, quoteOrder.ErrInvalidInput):
			h.logger.Warn("POST /quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /quote - Failed to quote order: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := QuoteResponse{
		ServiceName: result.ServiceName,
		Items:       make([]PriceLineResponse, 0, len(result.Items)),
		TotalPrice:  result.TotalPrice,
	}
	for _, line := range result.Items {
		response.Items = append(response.Items, PriceLineResponse{
			ItemID: line.ItemID,
			Name:   line.Name,
			Qty:    line.Qty,
			Amount: line.Amount,
		})
	}

	h.logger.Info("POST /quote - length=%s, total=%d$", req.LengthID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
