package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied is returned when the caller may not act on the booking.
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrCannotCancel is returned when the booking is past cancellation.
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInvalidTransition is returned for a status change the state machine
	// does not allow.
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned when a storage operation fails.
	ErrInternal = errors.New("bookings.service: internal error")
)
