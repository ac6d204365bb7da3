package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/logisync/scheduling-service/internal/domain"
	scheduleRepo "github.com/logisync/scheduling-service/internal/infra/storage/schedule"
	"github.com/logisync/scheduling-service/pkg/ptr"
)

// UseCase computes the bookable slots for a date and booking type. It is a
// pure read: the same inputs against unchanged stores yield the same output.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	blackoutRepo BlackoutRepository
	logger       Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		blackoutRepo: blackoutRepo,
		logger:       logger,
	}
}

// Execute runs the availability computation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, type=%s", req.Date.Format(domain.DateFormat), req.Type)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Read blackouts for the date. A full-day blackout short-circuits
	// slot generation before the working window is even loaded.
	blackouts, err := uc.blackoutRepo.ListByDate(ctx, req.Date, ptr.Ptr(req.Type))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	if hasFullDayBlackout(blackouts, req.Type) {
		uc.logger.Info("GetAvailableSlots: full-day blackout on %s, no slots", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Type: req.Type, Slots: []Slot{}}, nil
	}

	// 3. Load the current working window
	window, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWindowNotConfigured) {
			uc.logger.Warn("GetAvailableSlots: working window not configured")
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get working window: %v", err)
		return nil, fmt.Errorf("%w: failed to get working window: %v", ErrInternal, err)
	}

	// 4. Generate candidate slots for the requested type
	slots := generateWindowSlots(window.StartTime, window.EndTime, window.IntervalFor(req.Type))
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: window %s-%s yields no slots for interval=%d",
			window.StartTime, window.EndTime, window.IntervalFor(req.Type))
		return &Response{Date: req.Date, Type: req.Type, Slots: slots}, nil
	}

	// 5. Read the day's active bookings for this type
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		Date:            &req.Date,
		Type:            ptr.Ptr(req.Type),
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Flag occupied slots (bookings and partial blackouts)
	markOccupiedSlots(slots, bookings, blackouts, req.Type)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, type=%s",
		len(slots), req.Date.Format(domain.DateFormat), req.Type)

	return &Response{Date: req.Date, Type: req.Type, Slots: slots}, nil
}
