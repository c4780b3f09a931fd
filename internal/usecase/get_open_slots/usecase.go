package get_open_slots

import (
	"context"
	"fmt"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// UseCase use case для вычисления свободных слотов на дату
//
// Свободные слоты = слоты из календаря доступности минус занятые
// журналом бронирований. Порядок слотов календаря сохраняется.
type UseCase struct {
	store    AvailabilityStore
	bookings BookingsService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store AvailabilityStore, bookings BookingsService, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOpenSlots: validation failed: %v", err)
		return nil, err
	}

	open, err := uc.resolve(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetOpenSlots: failed to resolve slots for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetOpenSlots: date=%s has %d open slots", req.Date, len(open))

	return &Response{
		Date:  req.Date,
		Slots: open,
	}, nil
}

// resolve вычисляет разность календаря и журнала
// Слот, занятый журналом, пропадает из выдачи даже если журнал содержит
// его несколько раз
func (uc *UseCase) resolve(ctx context.Context, date domain.DateKey) ([]domain.TimeLabel, error) {
	scheduled := uc.store.ListSlots(ctx, date)

	occupied, err := uc.bookings.OccupiedSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[domain.TimeLabel]struct{}, len(occupied))
	for _, label := range occupied {
		taken[label] = struct{}{}
	}

	open := make([]domain.TimeLabel, 0, len(scheduled))
	for _, label := range scheduled {
		if _, ok := taken[label]; ok {
			continue
		}
		open = append(open, label)
	}

	return open, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := domain.ParseDateKey(req.Date); err != nil {
		return fmt.Errorf("%w: malformed date key %q", ErrInvalidInput, req.Date)
	}
	return nil
}
