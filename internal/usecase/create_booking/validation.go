package create_booking

import (
	"fmt"
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/types"
)

// validateRequest validates the use case input.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotOnGrid checks that the requested start time is one of the slot
// starts generated from the working window for the given type, and returns
// the slot end time. Bookings off the grid would silently desynchronize the
// availability view, so they are rejected here.
func validateSlotOnGrid(window *domain.WorkingWindow, bookingType domain.BookingType, start types.TimeString) (types.TimeString, error) {
	interval := window.IntervalFor(bookingType)
	if interval <= 0 {
		return "", fmt.Errorf("%w: non-positive interval configured", ErrInternal)
	}

	windowStart, err := window.StartTime.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: malformed window start: %v", ErrInternal, err)
	}
	windowEnd, err := window.EndTime.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: malformed window end: %v", ErrInternal, err)
	}
	startMinutes, err := start.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: malformed start time: %v", ErrInvalidTimeSlot, err)
	}

	if startMinutes < windowStart || (startMinutes-windowStart)%interval != 0 {
		return "", ErrInvalidTimeSlot
	}

	endMinutes := startMinutes + interval
	if endMinutes > windowEnd {
		return "", ErrInvalidTimeSlot
	}

	end, err := types.NewTimeStringFromMinutes(endMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	return end, nil
}

// findFullDayBlackout returns the first blackout blocking the whole day for
// the given type, or nil.
func findFullDayBlackout(blackouts []*domain.Blackout, bookingType domain.BookingType) *domain.Blackout {
	for _, blackout := range blackouts {
		if blackout.IsFullDay() && blackout.AppliesTo(bookingType) {
			return blackout
		}
	}
	return nil
}

// findSlotBlackout returns the first partial blackout covering the slot for
// the given type, or nil.
func findSlotBlackout(blackouts []*domain.Blackout, bookingType domain.BookingType, start, end types.TimeString) *domain.Blackout {
	for _, blackout := range blackouts {
		if blackout.AppliesTo(bookingType) && blackout.CoversSlot(start, end) {
			return blackout
		}
	}
	return nil
}

// isDateInPast reports whether the date is before today.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
