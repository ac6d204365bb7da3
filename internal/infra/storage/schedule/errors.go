package schedule

import "errors"

var (
	// ErrWindowNotConfigured is returned when no working window exists yet.
	ErrWindowNotConfigured = errors.New("schedule.repository: working window not configured")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
