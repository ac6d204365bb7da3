package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when the unique active-slot index rejects an insert.
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
