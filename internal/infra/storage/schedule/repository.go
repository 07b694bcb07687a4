package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	"github.com/m04kA/FFP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FFP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами расписания полей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает набор слотов одним запросом
// Повторная вставка того же окна игнорируется (ON CONFLICT DO NOTHING),
// поэтому сидинг расписания идемпотентен
func (r *Repository) CreateBatch(ctx context.Context, schedules []*domain.FieldSchedule) error {
	if len(schedules) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("field_schedules").
		Columns("field_id", "start_time", "end_time", "is_available")

	for _, s := range schedules {
		insertBuilder = insertBuilder.Values(s.FieldID, s.StartTime, s.EndTime, s.IsAvailable)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (field_id, start_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FieldSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"field_id",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
	).
		From("field_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.FieldSchedule
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.FieldID,
		&schedule.StartTime,
		&schedule.EndTime,
		&schedule.IsAvailable,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time

	return &schedule, nil
}

// ListByFieldBetween получает слоты поля в полуоткрытом окне [from, to)
func (r *Repository) ListByFieldBetween(ctx context.Context, fieldID int64, from, to time.Time) ([]*domain.FieldSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"field_id",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
	).
		From("field_schedules").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByFieldBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFieldBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.FieldSchedule, 0)

	for rows.Next() {
		var schedule domain.FieldSchedule
		var createdAt sql.NullTime

		err := rows.Scan(
			&schedule.ID,
			&schedule.FieldID,
			&schedule.StartTime,
			&schedule.EndTime,
			&schedule.IsAvailable,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByFieldBetween - scan row: %v", ErrScanRow, err)
		}

		schedule.CreatedAt = createdAt.Time
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFieldBetween - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Hold атомарно занимает слот: условный UPDATE с проверкой is_available
// Ровно один из конкурирующих вызовов получает строку, остальные - ErrScheduleTaken
// Это единственный способ перевести флаг в false
func (r *Repository) Hold(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("field_schedules").
		Set("is_available", false).
		Where(squirrel.Eq{"id": id, "is_available": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Hold - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Hold - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Hold - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleTaken
	}

	return nil
}

// Release возвращает слот в доступное состояние
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("field_schedules").
		Set("is_available", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
