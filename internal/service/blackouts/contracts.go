package blackouts

import (
	"context"
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
)

// BlackoutRepository is the storage surface used by the service.
type BlackoutRepository interface {
	Create(ctx context.Context, blackout *domain.Blackout) (*domain.Blackout, error)
	ListByDate(ctx context.Context, date time.Time, bookingType *domain.BookingType) ([]*domain.Blackout, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
