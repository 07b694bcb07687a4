package passwordreset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	"github.com/m04kA/FFP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FFP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с кодами восстановления пароля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кодов восстановления
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый одноразовый код
func (r *Repository) Create(ctx context.Context, reset *domain.PasswordReset) (*domain.PasswordReset, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("password_resets").
		Columns(
			"email",
			"code",
			"expires_at",
			"used",
		).
		Values(
			reset.Email,
			reset.Code,
			reset.ExpiresAt,
			reset.Used,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reset.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reset.CreatedAt = createdAt.Time

	return reset, nil
}

// GetActiveByEmailAndCode получает последний непогашенный код для email
// Проверка срока действия остаётся на сервисе (чтобы отличать expired от invalid)
func (r *Repository) GetActiveByEmailAndCode(ctx context.Context, email, code string) (*domain.PasswordReset, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"code",
		"expires_at",
		"used",
		"created_at",
	).
		From("password_resets").
		Where(squirrel.Eq{"email": email, "code": code, "used": false}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmailAndCode - build select query: %v", ErrBuildQuery, err)
	}

	var reset domain.PasswordReset
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reset.ID,
		&reset.Email,
		&reset.Code,
		&reset.ExpiresAt,
		&reset.Used,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmailAndCode - scan reset: %v", ErrScanRow, err)
	}

	reset.CreatedAt = createdAt.Time

	return &reset, nil
}

// MarkUsed погашает код, чтобы он не мог быть использован повторно
func (r *Repository) MarkUsed(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("password_resets").
		Set("used", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCodeNotFound
	}

	return nil
}

// InvalidateByEmail погашает все активные коды для email
// Вызывается перед выпуском нового кода, чтобы действовал только последний
func (r *Repository) InvalidateByEmail(ctx context.Context, email string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("password_resets").
		Set("used", true).
		Where(squirrel.Eq{"email": email, "used": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: InvalidateByEmail - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InvalidateByEmail - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
