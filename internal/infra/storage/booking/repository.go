package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fredartois/NBF-BookingService/internal/domain"
	"github.com/fredartois/NBF-BookingService/pkg/psqlbuilder"
	"github.com/fredartois/NBF-BookingService/pkg/txmanager"
)

// Repository репозиторий журнала бронирований
// Журнал append-only: записи никогда не обновляются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал бронирований
// Уникальность пары (date_key, time_label) журнал НЕ проверяет -
// вызывающий код обязан пройти через resolver перед записью
func (r *Repository) Append(ctx context.Context, entry *domain.BookingEntry) (*domain.BookingEntry, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date_key",
			"time_label",
			"customer_name",
			"contact_method",
			"contact_detail",
			"service_name",
			"total_price",
		).
		Values(
			entry.Date.String(),
			entry.Time.String(),
			entry.CustomerName,
			entry.ContactMethod,
			entry.ContactDetail,
			entry.ServiceName,
			entry.TotalPrice,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// ListForDate возвращает все бронирования на указанную дату
// Если используется транзакция, добавляем FOR UPDATE для блокировки строк
// (защита слота от параллельной записи при создании бронирования)
func (r *Repository) ListForDate(ctx context.Context, date domain.DateKey) ([]*domain.BookingEntry, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date_key",
		"time_label",
		"customer_name",
		"contact_method",
		"contact_detail",
		"service_name",
		"total_price",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"date_key": date.String()}).
		OrderBy("created_at ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// List возвращает весь журнал бронирований (сначала новые)
func (r *Repository) List(ctx context.Context) ([]*domain.BookingEntry, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date_key",
		"time_label",
		"customer_name",
		"contact_method",
		"contact_detail",
		"service_name",
		"total_price",
		"created_at",
	).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// scanEntries сканирует результаты запроса в слайс записей журнала
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.BookingEntry, error) {
	entries := make([]*domain.BookingEntry, 0)

	for rows.Next() {
		var entry domain.BookingEntry
		var dateKey, timeLabel string
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&dateKey,
			&timeLabel,
			&entry.CustomerName,
			&entry.ContactMethod,
			&entry.ContactDetail,
			&entry.ServiceName,
			&entry.TotalPrice,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.Date = domain.DateKey(dateKey)
		entry.Time = domain.TimeLabel(timeLabel)
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
