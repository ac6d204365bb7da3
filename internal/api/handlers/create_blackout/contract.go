package create_blackout

import (
	"context"

	"github.com/logisync/scheduling-service/internal/service/blackouts/models"
)

type BlackoutsService interface {
	Create(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
