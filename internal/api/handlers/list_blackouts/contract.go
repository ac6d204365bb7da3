package list_blackouts

import (
	"context"
	"time"

	"github.com/logisync/scheduling-service/internal/service/blackouts/models"
)

type BlackoutsService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.BlackoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
