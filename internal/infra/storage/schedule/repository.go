package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/dbmetrics"
	"github.com/logisync/scheduling-service/pkg/psqlbuilder"
)

// windowRowID pins the working window to a single row.
const windowRowID = 1

// Repository reads and writes the single active working window.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new working window repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the current working window.
// Returns ErrWindowNotConfigured when no window has been set up yet.
func (r *Repository) Get(ctx context.Context) (*domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"load_interval_minutes",
		"unload_interval_minutes",
		"created_at",
		"updated_at",
	).
		From("working_window").
		Where(squirrel.Eq{"id": windowRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.WorkingWindow
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.StartTime,
		&window.EndTime,
		&window.LoadIntervalMinutes,
		&window.UnloadIntervalMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan window: %v", ErrScanRow, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

// Upsert creates the working window or replaces the existing one.
// The table admits exactly one row, so an upsert keyed on the fixed id is
// the whole admin write path.
func (r *Repository) Upsert(ctx context.Context, window *domain.WorkingWindow) (*domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_window").
		Columns(
			"id",
			"start_time",
			"end_time",
			"load_interval_minutes",
			"unload_interval_minutes",
		).
		Values(
			windowRowID,
			window.StartTime,
			window.EndTime,
			window.LoadIntervalMinutes,
			window.UnloadIntervalMinutes,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			load_interval_minutes = EXCLUDED.load_interval_minutes,
			unload_interval_minutes = EXCLUDED.unload_interval_minutes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}
