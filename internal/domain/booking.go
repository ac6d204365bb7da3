package domain

import (
	"time"

	"github.com/logisync/scheduling-service/pkg/types"
)

// BookingType selects which interval length applies when generating slots.
type BookingType string

const (
	TypeLoad   BookingType = "carga"
	TypeUnload BookingType = "descarga"
)

// IsValid reports whether the value is one of the two recognized types.
func (t BookingType) IsValid() bool {
	return t == TypeLoad || t == TypeUnload
}

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pendente"
	StatusConfirmed  BookingStatus = "confirmado"
	StatusRejected   BookingStatus = "recusado"
	StatusInProgress BookingStatus = "em_andamento"
	StatusCompleted  BookingStatus = "finalizado"
	StatusCancelled  BookingStatus = "cancelado"
)

// statusTransitions is the closed set of allowed status changes.
// Rejected, completed and cancelled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo reports whether moving from the current status to the
// target status is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether the value is a known booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a loading or unloading appointment at the gate.
type Booking struct {
	ID          int64
	UserID      int64
	Type        BookingType
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	// Denormalized data for history
	VehiclePlate *string
	ProductName  *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
// Rejected and cancelled bookings free the slot for other carriers.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusRejected
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OccupiesSlot reports whether the booking blocks the given slot range.
// Occupancy is an exact match on the (start, end) pair: bookings are always
// created on the generated grid, so overlap arithmetic is not needed.
func (b *Booking) OccupiesSlot(start, end types.TimeString) bool {
	return b.IsActive() && b.StartTime.Equal(start) && b.EndTime.Equal(end)
}

// BookingsFilter is the filter for listing bookings.
type BookingsFilter struct {
	Date            *time.Time     // booking date (optional)
	Type            *BookingType   // load/unload (optional)
	Status          *BookingStatus // specific status (optional)
	UserID          *int64         // bookings of one user (optional)
	IncludeInactive bool           // include cancelled and rejected bookings
}
