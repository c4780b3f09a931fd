package availability

import (
	"context"
	"fmt"
	"sync"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// Store хранилище доступности: in-memory снимок календаря, загруженный при
// старте, плюс синхронный сброс в репозиторий после каждой мутации.
//
// Если сброс не удался, мутация считается НЕ применённой для вызывающего
// кода, хотя in-memory копия уже могла измениться. Для инструмента одного
// админа это задокументированный остаточный риск, а не дефект хранилища.
type Store struct {
	mu     sync.RWMutex
	record domain.AvailabilityRecord

	repo   Repository
	txMgr  TransactionManager
	logger Logger
}

// NewStore создает хранилище и загружает снимок календаря из репозитория
func NewStore(ctx context.Context, repo Repository, txMgr TransactionManager, logger Logger) (*Store, error) {
	record, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: NewStore - load record: %v", ErrInternal, err)
	}

	logger.Info("availability: loaded %d available dates", len(record))

	return &Store{
		record: record,
		repo:   repo,
		txMgr:  txMgr,
		logger: logger,
	}, nil
}

// SetSlot добавляет метку времени в список даты
// Список остаётся отсортированным и без дубликатов; повторное добавление
// уже существующей метки - no-op (без сброса в хранилище)
func (s *Store) SetSlot(ctx context.Context, date domain.DateKey, label domain.TimeLabel) error {
	if date.IsZero() {
		return ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.record.SetSlot(date, label) {
		s.logger.Info("SetSlot: %s already open on %s", label, date)
		return nil
	}

	if err := s.flush(ctx); err != nil {
		s.logger.Error("SetSlot: flush failed for %s %s: %v", date, label, err)
		return err
	}

	s.logger.Info("SetSlot: %s opened on %s", label, date)
	return nil
}

// SetCustomSlot нормализует свободный ввод времени и добавляет метку
func (s *Store) SetCustomSlot(ctx context.Context, date domain.DateKey, raw string, period string) (domain.TimeLabel, error) {
	label, err := BuildCustomLabel(raw, period)
	if err != nil {
		return "", err
	}

	if err := s.SetSlot(ctx, date, label); err != nil {
		return "", err
	}

	return label, nil
}

// UnsetSlot убирает метку времени из списка даты
// Если список опустел, дата целиком исчезает из индекса доступных дат
func (s *Store) UnsetSlot(ctx context.Context, date domain.DateKey, label domain.TimeLabel) error {
	if date.IsZero() {
		return ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.record.UnsetSlot(date, label) {
		s.logger.Info("UnsetSlot: %s was not open on %s", label, date)
		return nil
	}

	if err := s.flush(ctx); err != nil {
		s.logger.Error("UnsetSlot: flush failed for %s %s: %v", date, label, err)
		return err
	}

	s.logger.Info("UnsetSlot: %s closed on %s", label, date)
	return nil
}

// ClearDate убирает все слоты даты одной логической операцией
func (s *Store) ClearDate(ctx context.Context, date domain.DateKey) error {
	if date.IsZero() {
		return ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.record.ClearDate(date) {
		s.logger.Info("ClearDate: %s had no slots", date)
		return nil
	}

	if err := s.flush(ctx); err != nil {
		s.logger.Error("ClearDate: flush failed for %s: %v", date, err)
		return err
	}

	s.logger.Info("ClearDate: %s cleared", date)
	return nil
}

// ListAvailableDates возвращает даты с хотя бы одним открытым слотом
func (s *Store) ListAvailableDates(ctx context.Context) []domain.DateKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.record.Dates()
}

// ListSlots возвращает упорядоченный список слотов даты
// Для отсутствующей даты возвращается пустой список
func (s *Store) ListSlots(ctx context.Context, date domain.DateKey) []domain.TimeLabel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.record.Slots(date)
}

// flush синхронно сохраняет снимок в репозиторий
// Замена записи выполняется в транзакции, чтобы не было наблюдаемого
// частично-сохранённого состояния
// Вызывается под мьютексом
func (s *Store) flush(ctx context.Context) error {
	snapshot := s.record.Clone()

	err := s.txMgr.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Replace(txCtx, snapshot)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}
