package create_booking

import (
	"context"
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
)

// BookingRepository is the booking store surface used by this use case.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// TransactionManager runs the availability re-check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (replaceable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
