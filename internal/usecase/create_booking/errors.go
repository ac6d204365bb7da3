package create_booking

import "errors"

var (
	// ErrScheduleNotConfigured is returned when no working window exists.
	ErrScheduleNotConfigured = errors.New("create_booking: working window not configured")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate is returned when the booking date lies in the past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDayUnavailable is returned when a full-day blackout blocks the date.
	ErrDayUnavailable = errors.New("create_booking: day is unavailable")

	// ErrSlotUnavailable is returned when a partial blackout blocks the slot.
	ErrSlotUnavailable = errors.New("create_booking: slot is unavailable")

	// ErrInvalidTimeSlot is returned when the start time does not lie on the
	// slot grid generated from the working window.
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when an active booking already holds the slot.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal is returned when a store operation fails.
	ErrInternal = errors.New("create_booking: internal error")
)
