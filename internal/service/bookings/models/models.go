package models

import (
	"fmt"
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
)

// BookingResponse is the service-level view of a booking.
type BookingResponse struct {
	ID                 int64
	UserID             int64
	Type               string
	BookingDate        time.Time
	StartTime          string
	EndTime            string
	Status             string
	VehiclePlate       *string
	ProductName        *string
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// ListBookingsRequest filters the staff listing of bookings.
type ListBookingsRequest struct {
	Date            *time.Time
	Type            *string
	Status          *string
	IncludeInactive bool
}

// GetUserBookingsRequest lists the bookings of one user.
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// CancelBookingRequest cancels a booking on behalf of a user.
type CancelBookingRequest struct {
	UserID             int64
	IsStaff            bool
	CancellationReason string
}

// UpdateStatusRequest moves a booking to a new status.
type UpdateStatusRequest struct {
	UserID  int64
	IsStaff bool
	Status  string
}

// FromDomainBooking converts a domain booking to the service response.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		Type:               string(b.Type),
		BookingDate:        b.BookingDate,
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		VehiclePlate:       b.VehiclePlate,
		ProductName:        b.ProductName,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}

// ToDomainBookingStatus parses and validates a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// ToDomainBookingType parses and validates a booking type string.
func ToDomainBookingType(s string) (domain.BookingType, error) {
	bookingType := domain.BookingType(s)
	if !bookingType.IsValid() {
		return "", fmt.Errorf("unknown booking type %q", s)
	}
	return bookingType, nil
}

// ToDomainFilter converts the staff listing request into a domain filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Type != nil {
		bookingType, err := ToDomainBookingType(*r.Type)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Type = &bookingType
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}
