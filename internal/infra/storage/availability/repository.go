package availability

import (
	"context"
	"fmt"

	"github.com/fredartois/NBF-BookingService/internal/domain"
	"github.com/fredartois/NBF-BookingService/pkg/psqlbuilder"
	"github.com/fredartois/NBF-BookingService/pkg/txmanager"
)

// Repository репозиторий для хранения календаря доступности
// Каждый слот хранится отдельной строкой (date_key, time_label, position);
// position фиксирует порядок метки в списке даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает всю запись доступности
// Возвращает пустую запись, если в хранилище ничего нет
func (r *Repository) Load(ctx context.Context) (domain.AvailabilityRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date_key", "time_label").
		From("availability_slots").
		OrderBy("date_key ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	record := make(domain.AvailabilityRecord)

	for rows.Next() {
		var dateKey, timeLabel string
		if err := rows.Scan(&dateKey, &timeLabel); err != nil {
			return nil, fmt.Errorf("%w: Load - scan row: %v", ErrScanRow, err)
		}
		key := domain.DateKey(dateKey)
		record[key] = append(record[key], domain.TimeLabel(timeLabel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - rows error: %v", ErrScanRow, err)
	}

	return record, nil
}

// Replace полностью заменяет сохранённую запись доступности
// Вызывающий код обязан обернуть вызов в транзакцию (txmanager),
// чтобы замена была атомарной
func (r *Repository) Replace(ctx context.Context, record domain.AvailabilityRecord) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	delQuery, delArgs, err := psqlbuilder.Delete("availability_slots").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	dates := record.Dates()
	if len(dates) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns("date_key", "time_label", "position")

	for _, date := range dates {
		for pos, label := range record.Slots(date) {
			insertBuilder = insertBuilder.Values(date.String(), label.String(), pos)
		}
	}

	insQuery, insArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insQuery, insArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
