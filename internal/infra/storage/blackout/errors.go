package blackout

import "errors"

var (
	// ErrBlackoutNotFound is returned when the blackout does not exist.
	ErrBlackoutNotFound = errors.New("blackout.repository: blackout not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("blackout.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("blackout.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails.
	ErrScanRow = errors.New("blackout.repository: failed to scan row")
)
