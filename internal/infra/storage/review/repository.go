package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	"github.com/m04kA/FFP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FFP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
// Список изображений хранится как text[] (pq.Array)
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"user_id",
			"field_id",
			"rating",
			"comment",
			"images",
		).
		Values(
			review.UserID,
			review.FieldID,
			review.Rating,
			review.Comment,
			pq.Array(review.Images),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// ListByField получает отзывы поля, новые первыми
func (r *Repository) ListByField(ctx context.Context, fieldID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"field_id",
		"rating",
		"comment",
		"images",
		"created_at",
	).
		From("reviews").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		var review domain.Review
		var createdAt sql.NullTime
		var images pq.StringArray

		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.FieldID,
			&review.Rating,
			&review.Comment,
			&images,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByField - scan row: %v", ErrScanRow, err)
		}

		review.Images = images
		review.CreatedAt = createdAt.Time
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByField - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
