package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/logisync/scheduling-service/internal/domain"
	bookingRepo "github.com/logisync/scheduling-service/internal/infra/storage/booking"
	scheduleRepo "github.com/logisync/scheduling-service/internal/infra/storage/schedule"
	"github.com/logisync/scheduling-service/pkg/ptr"
)

// UseCase creates a booking for a free slot. The availability re-check and
// the insert run in one serializable transaction, so two drivers racing for
// the same slot cannot both succeed; the partial unique index on active
// bookings is the database-level backstop.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	blackoutRepo BlackoutRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new instance of the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		blackoutRepo: blackoutRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, type=%s, date=%s, time=%s",
		req.UserID, req.Type, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Reject dates in the past
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Check blackouts before touching the transaction
	blackouts, err := uc.blackoutRepo.ListByDate(ctx, req.Date, ptr.Ptr(req.Type))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	if b := findFullDayBlackout(blackouts, req.Type); b != nil {
		uc.logger.Warn("CreateBooking: full-day blackout id=%d blocks %s", b.ID, req.Date.Format(domain.DateFormat))
		return nil, ErrDayUnavailable
	}

	var result *domain.Booking

	// 4. Availability check and insert inside a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load the working window
		window, err := uc.scheduleRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrWindowNotConfigured) {
				uc.logger.Warn("CreateBooking: working window not configured")
				return ErrScheduleNotConfigured
			}
			uc.logger.Error("CreateBooking: failed to get working window: %v", err)
			return fmt.Errorf("%w: failed to get working window: %v", ErrInternal, err)
		}

		// 4.2. The requested start must lie on the generated slot grid
		endTime, err := validateSlotOnGrid(window, req.Type, req.StartTime)
		if err != nil {
			uc.logger.Warn("CreateBooking: slot %s rejected: %v", req.StartTime, err)
			return err
		}

		// 4.3. Partial blackouts block individual slots
		if b := findSlotBlackout(blackouts, req.Type, req.StartTime, endTime); b != nil {
			uc.logger.Warn("CreateBooking: blackout id=%d blocks slot %s-%s", b.ID, req.StartTime, endTime)
			return ErrSlotUnavailable
		}

		// 4.4. Re-read the day's active bookings with FOR UPDATE
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, domain.BookingsFilter{
			Date:            &req.Date,
			Type:            ptr.Ptr(req.Type),
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, existing := range bookings {
			if existing.OccupiesSlot(req.StartTime, endTime) {
				uc.logger.Warn("CreateBooking: slot %s-%s already taken by booking id=%d",
					req.StartTime, endTime, existing.ID)
				return ErrSlotNotAvailable
			}
		}

		// 4.5. Insert with initial status "pendente"
		booking := &domain.Booking{
			UserID:       req.UserID,
			Type:         req.Type,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			EndTime:      endTime,
			Status:       domain.StatusPending,
			VehiclePlate: req.VehiclePlate,
			ProductName:  req.ProductName,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		Type:         result.Type,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		VehiclePlate: result.VehiclePlate,
		ProductName:  result.ProductName,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
