package get_available_slots

import (
	"context"
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
)

// BookingRepository is the booking store read surface used by this use case.
type BookingRepository interface {
	// ListWithFilter returns the bookings matching the filter.
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository reads the single active working window.
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WorkingWindow, error)
}

// BlackoutRepository reads blackout records for a date.
type BlackoutRepository interface {
	ListByDate(ctx context.Context, date time.Time, bookingType *domain.BookingType) ([]*domain.Blackout, error)
}

// Logger is the logging interface used by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
