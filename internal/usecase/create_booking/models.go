package create_booking

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/types"
)

// Request is the input for creating a booking.
type Request struct {
	UserID       int64              // driver requesting the slot
	Type         domain.BookingType // carga or descarga
	Date         time.Time          // booking date, time part ignored
	StartTime    types.TimeString   // slot start, must lie on the generated grid
	VehiclePlate *string            // optional vehicle plate, kept for history
	ProductName  *string            // optional product, kept for history
	Notes        *string            // optional free-form notes
}

// Response is the created booking.
type Response struct {
	ID           int64
	UserID       int64
	Type         domain.BookingType
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       string
	VehiclePlate *string
	ProductName  *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
