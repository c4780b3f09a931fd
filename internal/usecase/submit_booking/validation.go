package submit_booking

import (
	"fmt"
	"strings"

	"github.com/fredartois/NBF-BookingService/internal/domain"
	"github.com/fredartois/NBF-BookingService/internal/workflow"
)

// buildDraft восстанавливает черновик флоу из запроса
// Количества дополнений проходят через клэмп каталога, как если бы
// клиент вводил их на экране дополнений
func buildDraft(catalog domain.Catalog, req *Request) (*workflow.Draft, error) {
	draft := workflow.NewDraft()

	if req.LengthID != "" {
		if err := draft.SelectLength(catalog, req.LengthID); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLength, req.LengthID)
		}
	}

	for id, qty := range req.AddonQty {
		if err := draft.SetAddonQuantity(catalog, id, qty); err != nil {
			return nil, fmt.Errorf("%w: unknown addon %q", ErrInvalidInput, id)
		}
	}

	draft.Schedule(req.Date, req.Time)

	draft.CustomerName = strings.TrimSpace(req.CustomerName)
	draft.ContactMethod = req.ContactMethod
	draft.ContactDetail = req.ContactDetail
	if req.ContactMethod == domain.ContactPhone {
		draft.ContactDetail = workflow.FormatPhone(req.ContactDetail)
	}

	return draft, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := domain.ParseDateKey(req.Date); err != nil {
		return fmt.Errorf("%w: malformed date key %q", ErrInvalidInput, req.Date)
	}
	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLen {
		return fmt.Errorf("%w: customer name too long", ErrInvalidInput)
	}
	return nil
}
