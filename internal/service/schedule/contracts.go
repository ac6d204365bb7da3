package schedule

import (
	"context"

	"github.com/logisync/scheduling-service/internal/domain"
)

// ScheduleRepository is the storage surface used by the service.
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WorkingWindow, error)
	Upsert(ctx context.Context, window *domain.WorkingWindow) (*domain.WorkingWindow, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
