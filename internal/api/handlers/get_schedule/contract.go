package get_schedule

import (
	"context"

	"github.com/logisync/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context) (*models.WorkingWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
