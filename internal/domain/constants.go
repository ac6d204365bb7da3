package domain

// Business validation constants
const (
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 480 // 8 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlackoutReasonLength     = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists the statuses that release a slot.
// Used when filtering bookings for availability computation.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}
