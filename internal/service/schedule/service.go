package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/logisync/scheduling-service/internal/domain"
	scheduleRepo "github.com/logisync/scheduling-service/internal/infra/storage/schedule"
	"github.com/logisync/scheduling-service/internal/service/schedule/models"
	"github.com/logisync/scheduling-service/pkg/types"
)

// Service manages the single active working window.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates a new schedule service.
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get returns the current working window.
func (s *Service) Get(ctx context.Context) (*models.WorkingWindowResponse, error) {
	window, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWindowNotConfigured) {
			s.logger.Warn("Get: working window not configured")
			return nil, ErrNotConfigured
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindow(window), nil
}

// Upsert validates and replaces the active working window.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertWindowRequest) (*models.WorkingWindowResponse, error) {
	s.logger.Info("Upsert: updating working window to %s-%s (carga=%dmin, descarga=%dmin)",
		req.StartTime, req.EndTime, req.LoadIntervalMinutes, req.UnloadIntervalMinutes)

	window, err := toDomainWindow(req)
	if err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.scheduleRepo.Upsert(ctx, window)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: working window updated")
	return models.FromDomainWindow(updated), nil
}

// toDomainWindow validates the request and builds the domain window.
func toDomainWindow(req *models.UpsertWindowRequest) (*domain.WorkingWindow, error) {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidWindow, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidWindow, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidWindow)
	}

	for _, interval := range []int{req.LoadIntervalMinutes, req.UnloadIntervalMinutes} {
		if interval < domain.MinIntervalMinutes || interval > domain.MaxIntervalMinutes {
			return nil, fmt.Errorf("%w: interval must be between %d and %d minutes",
				ErrInvalidWindow, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
		}
	}

	return &domain.WorkingWindow{
		StartTime:             start,
		EndTime:               end,
		LoadIntervalMinutes:   req.LoadIntervalMinutes,
		UnloadIntervalMinutes: req.UnloadIntervalMinutes,
	}, nil
}
