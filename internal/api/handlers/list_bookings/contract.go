package list_bookings

import (
	"context"

	"github.com/logisync/scheduling-service/internal/service/bookings/models"
)

type BookingsService interface {
	ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
