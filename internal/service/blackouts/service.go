package blackouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	blackoutRepo "github.com/logisync/scheduling-service/internal/infra/storage/blackout"
	"github.com/logisync/scheduling-service/internal/service/blackouts/models"
	"github.com/logisync/scheduling-service/pkg/types"
)

// Service manages blackout records ("indisponibilidades").
type Service struct {
	blackoutRepo BlackoutRepository
	logger       Logger
}

// NewService creates a new blackouts service.
func NewService(blackoutRepo BlackoutRepository, logger Logger) *Service {
	return &Service{
		blackoutRepo: blackoutRepo,
		logger:       logger,
	}
}

// Create validates and stores a blackout record.
func (s *Service) Create(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("Create: blackout for date=%s", req.Date.Format(domain.DateFormat))

	blackout, err := toDomainBlackout(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blackoutRepo.Create(ctx, blackout)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blackout id=%d created", created.ID)
	return models.FromDomainBlackout(created), nil
}

// ListByDate returns the blackouts declared for a date.
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BlackoutListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	blackouts, err := s.blackoutRepo.ListByDate(ctx, date, nil)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlackoutList(blackouts), nil
}

// Delete removes a blackout record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing blackout id=%d", id)

	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("Delete: blackout id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("Delete: repository error for blackout id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blackout id=%d removed", id)
	return nil
}

// toDomainBlackout validates the request and builds the domain record.
func toDomainBlackout(req *models.CreateBlackoutRequest) (*domain.Blackout, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// A partial blackout needs both ends of the range.
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, fmt.Errorf("%w: start and end time must be given together", ErrInvalidInput)
	}

	blackout := &domain.Blackout{
		Date:   req.Date,
		Reason: req.Reason,
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
		}
		blackout.StartTime = &start
		blackout.EndTime = &end
	}

	if req.Type != nil {
		bookingType := domain.BookingType(*req.Type)
		if !bookingType.IsValid() {
			return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, *req.Type)
		}
		blackout.Type = &bookingType
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlackoutReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlackoutReasonLength)
	}

	return blackout, nil
}
