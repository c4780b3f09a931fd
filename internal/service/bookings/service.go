package bookings

import (
	"context"
	"fmt"

	"github.com/fredartois/NBF-BookingService/internal/domain"
	"github.com/fredartois/NBF-BookingService/internal/service/bookings/models"
)

// Service сервис чтения журнала бронирований
type Service struct {
	ledgerRepo LedgerRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса журнала бронирований
func NewService(ledgerRepo LedgerRepository, logger Logger) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// ListAll возвращает весь журнал бронирований (сначала новые)
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	entries, err := s.ledgerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d ledger entries", len(entries))
	return models.FromDomainEntryList(entries), nil
}

// ListForDate возвращает бронирования на указанную дату
func (s *Service) ListForDate(ctx context.Context, date domain.DateKey) (*models.BookingListResponse, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	entries, err := s.ledgerRepo.ListForDate(ctx, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: fetched %d entries for date=%s", len(entries), date)
	return models.FromDomainEntryList(entries), nil
}

// OccupiedSlots возвращает занятые метки времени на дату
// Порядок соответствует порядку записи в журнал
func (s *Service) OccupiedSlots(ctx context.Context, date domain.DateKey) ([]domain.TimeLabel, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	entries, err := s.ledgerRepo.ListForDate(ctx, date)
	if err != nil {
		s.logger.Error("OccupiedSlots: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: OccupiedSlots - repository error: %v", ErrInternal, err)
	}

	occupied := make([]domain.TimeLabel, 0, len(entries))
	for _, entry := range entries {
		occupied = append(occupied, entry.Time)
	}

	return occupied, nil
}
