package get_available_slots

import (
	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/types"
)

// generateWindowSlots tiles [start, end) with contiguous slots of
// intervalMinutes each, in ascending order. A trailing fragment shorter than
// the interval is dropped, never truncated. Returns no slots when
// intervalMinutes <= 0, when start >= end, or when either time is malformed.
func generateWindowSlots(start, end types.TimeString, intervalMinutes int) []Slot {
	slots := make([]Slot, 0)

	if intervalMinutes <= 0 || !start.IsBefore(end) {
		return slots
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return slots
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return slots
	}

	for current := startMinutes; current+intervalMinutes <= endMinutes; current += intervalMinutes {
		slotStart, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return slots
		}
		slotEnd, err := types.NewTimeStringFromMinutes(current + intervalMinutes)
		if err != nil {
			return slots
		}
		slots = append(slots, Slot{StartTime: slotStart, EndTime: slotEnd})
	}

	return slots
}

// hasFullDayBlackout reports whether any blackout blocks the entire day for
// the given booking type.
func hasFullDayBlackout(blackouts []*domain.Blackout, bookingType domain.BookingType) bool {
	for _, blackout := range blackouts {
		if blackout.IsFullDay() && blackout.AppliesTo(bookingType) {
			return true
		}
	}
	return false
}

// markOccupiedSlots flags each slot as booked when an active booking holds
// its exact range or a partial blackout covers it for the given type.
func markOccupiedSlots(slots []Slot, bookings []*domain.Booking, blackouts []*domain.Blackout, bookingType domain.BookingType) {
	for i := range slots {
		slots[i].Booked = isSlotOccupied(slots[i], bookings, blackouts, bookingType)
	}
}

func isSlotOccupied(slot Slot, bookings []*domain.Booking, blackouts []*domain.Blackout, bookingType domain.BookingType) bool {
	for _, booking := range bookings {
		if booking.OccupiesSlot(slot.StartTime, slot.EndTime) {
			return true
		}
	}

	for _, blackout := range blackouts {
		if blackout.AppliesTo(bookingType) && blackout.CoversSlot(slot.StartTime, slot.EndTime) {
			return true
		}
	}

	return false
}
