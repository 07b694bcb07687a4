package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// captureExecutor перехватывает SQL и аргументы вместо обращения к базе
type captureExecutor struct {
	query string
	args  []interface{}
}

var errCaptured = errors.New("query captured")

func (c *captureExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	c.query = query
	c.args = args
	return oneRowResult{}, nil
}

func (c *captureExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	c.query = query
	c.args = args
	return nil, errCaptured
}

func (c *captureExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type oneRowResult struct{}

func (oneRowResult) LastInsertId() (int64, error) { return 0, nil }
func (oneRowResult) RowsAffected() (int64, error) { return 1, nil }

func TestRepository_ListWithFilter_EndDateExclusive(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	bound := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	filter := domain.BookingsFilter{
		EndDate:         &bound,
		IncludeInactive: true,
	}

	_, err := repo.ListWithFilter(context.Background(), filter)

	require.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, executor.query, "start_time <")
	require.Len(t, executor.args, 1)
	assert.Equal(t, bound, executor.args[0], "exclusive upper bound must reach SQL unchanged")
}

func TestRepository_ListWithFilter_DateRange(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	filter := domain.BookingsFilter{
		StartDate:       &start,
		EndDate:         &end,
		IncludeInactive: true,
	}

	_, err := repo.ListWithFilter(context.Background(), filter)

	require.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, executor.query, "start_time >=")
	assert.Contains(t, executor.query, "start_time <")
	assert.Equal(t, []interface{}{start, end}, executor.args)
}

func TestRepository_Reject_AppendsReasonToNote(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	err := repo.Reject(context.Background(), 7, "поле закрыто на ремонт")

	require.NoError(t, err)
	assert.Contains(t, executor.query, "COALESCE(note, '')", "reason must be appended to the existing note, not replace it")
	assert.Equal(t, []interface{}{domain.StatusRejected, "поле закрыто на ремонт", int64(7)}, executor.args)
}
