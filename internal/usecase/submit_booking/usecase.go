package submit_booking

import (
	"context"
	"fmt"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// UseCase use case фиксации заявки на бронирование
//
// Проверка свежести слота выполняется внутри сериализуемой транзакции
// непосредственно перед записью в журнал. Это единственная защита от
// гонки двух клиентов за один слот: журнал сам уникальность не проверяет
type UseCase struct {
	ledgerRepo    LedgerRepository
	store         AvailabilityStore
	catalogClient CatalogServiceClient
	notifier      NotifierClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledgerRepo LedgerRepository,
	store AvailabilityStore,
	catalogClient CatalogServiceClient,
	notifier NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledgerRepo:    ledgerRepo,
		store:         store,
		catalogClient: catalogClient,
		notifier:      notifier,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case фиксации заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: length=%s, date=%s, time=%s, contact=%s",
		req.LengthID, req.Date, req.Time, req.ContactMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем каталог (при недоступности сервиса - встроенный каталог)
	catalog, err := uc.catalogClient.GetCatalogWithGracefulDegradation(ctx)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	// 3. Восстанавливаем черновик и проверяем полноту всех этапов
	draft, err := buildDraft(catalog, req)
	if err != nil {
		uc.logger.Warn("SubmitBooking: draft build failed: %v", err)
		return nil, err
	}
	if err := draft.Submit(); err != nil {
		uc.logger.Warn("SubmitBooking: draft incomplete, date=%s time=%s", req.Date, req.Time)
		return nil, ErrDraftIncomplete
	}

	// 4. Считаем итоговую цену
	total, items := domain.ComputeTotal(catalog, draft.LengthID, draft.AddonQty)
	serviceName := catalog.FindByID(draft.LengthID).Name

	entry := &domain.BookingEntry{
		Date:          draft.Date,
		Time:          draft.Time,
		CustomerName:  draft.CustomerName,
		ContactMethod: draft.ContactMethod,
		ContactDetail: draft.ContactDetail,
		ServiceName:   serviceName,
		TotalPrice:    total,
		CreatedAt:     uc.timeProvider.Now(),
	}

	// 5. Фиксируем бронь в сериализуемой транзакции
	var created *domain.BookingEntry
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем журнал на дату с блокировкой строк (FOR UPDATE)
		booked, err := uc.ledgerRepo.ListForDate(txCtx, draft.Date)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем свежесть слота: он всё ещё в календаре и не занят
		if err := checkSlotOpen(uc.store.ListSlots(txCtx, draft.Date), booked, draft.Date, draft.Time); err != nil {
			uc.logger.Warn("SubmitBooking: slot conflict, date=%s time=%s", draft.Date, draft.Time)
			return err
		}

		// 5.3. Записываем в журнал
		created, err = uc.ledgerRepo.Append(txCtx, entry)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to append ledger entry: %v", err)
			return fmt.Errorf("%w: failed to append ledger entry: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: booked id=%d, date=%s, time=%s, total=%d$",
		created.ID, created.Date, created.Time, created.TotalPrice)

	// 6. Отправляем уведомление. Ошибки доставки не откатывают бронь
	uc.notifier.Notify(ctx, &domain.BookingSummary{
		CustomerName:  created.CustomerName,
		ContactMethod: created.ContactMethod,
		ContactDetail: created.ContactDetail,
		Date:          created.Date,
		Time:          created.Time,
		ServiceName:   created.ServiceName,
		Items:         items,
		TotalPrice:    created.TotalPrice,
	})

	return &Response{
		ID:          created.ID,
		Date:        created.Date,
		Time:        created.Time,
		ServiceName: created.ServiceName,
		Items:       items,
		TotalPrice:  created.TotalPrice,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// checkSlotOpen проверяет, что слот присутствует в календаре доступности
// и не занят ни одной записью журнала
func checkSlotOpen(scheduled []domain.TimeLabel, booked []*domain.BookingEntry, date domain.DateKey, label domain.TimeLabel) error {
	open := false
	for _, s := range scheduled {
		if s == label {
			open = true
			break
		}
	}
	if !open {
		return ErrSlotConflict
	}

	for _, entry := range booked {
		if entry.OccupiesSlot(date, label) {
			return ErrSlotConflict
		}
	}

	return nil
}
