package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/dbmetrics"
	"github.com/logisync/scheduling-service/pkg/psqlbuilder"
)

var blackoutColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"type",
	"reason",
	"created_at",
}

// Repository persists blackout records.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new blackout repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a blackout record.
func (r *Repository) Create(ctx context.Context, blackout *domain.Blackout) (*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blackouts").
		Columns(
			"date",
			"start_time",
			"end_time",
			"type",
			"reason",
		).
		Values(
			blackout.Date,
			blackout.StartTime,
			blackout.EndTime,
			blackout.Type,
			blackout.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blackout.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blackout.CreatedAt = createdAt.Time

	return blackout, nil
}

// ListByDate returns the blackouts for a date. When bookingType is set, only
// records matching that type or declared for both types are returned.
func (r *Repository) ListByDate(ctx context.Context, date time.Time, bookingType *domain.BookingType) ([]*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blackoutColumns...).
		From("blackouts").
		Where(squirrel.Eq{"date": date})

	if bookingType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"type": *bookingType},
			squirrel.Eq{"type": nil},
		})
	}

	query, args, err := selectBuilder.
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.Blackout, 0)

	for rows.Next() {
		var blackout domain.Blackout
		var createdAt sql.NullTime
		var blackoutType sql.NullString

		err := rows.Scan(
			&blackout.ID,
			&blackout.Date,
			&blackout.StartTime,
			&blackout.EndTime,
			&blackoutType,
			&blackout.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}

		if blackoutType.Valid {
			t := domain.BookingType(blackoutType.String)
			blackout.Type = &t
		}
		blackout.CreatedAt = createdAt.Time

		blackouts = append(blackouts, &blackout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// Delete removes a blackout record.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blackouts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlackoutNotFound
	}

	return nil
}
