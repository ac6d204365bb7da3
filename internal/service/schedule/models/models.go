package models

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
)

// WorkingWindowResponse is the service-level view of the working window.
type WorkingWindowResponse struct {
	StartTime             string
	EndTime               string
	LoadIntervalMinutes   int
	UnloadIntervalMinutes int
	UpdatedAt             time.Time
}

// UpsertWindowRequest replaces the active working window.
type UpsertWindowRequest struct {
	StartTime             string
	EndTime               string
	LoadIntervalMinutes   int
	UnloadIntervalMinutes int
}

// FromDomainWindow converts a domain window to the service response.
func FromDomainWindow(w *domain.WorkingWindow) *WorkingWindowResponse {
	return &WorkingWindowResponse{
		StartTime:             w.StartTime.String(),
		EndTime:               w.EndTime.String(),
		LoadIntervalMinutes:   w.LoadIntervalMinutes,
		UnloadIntervalMinutes: w.UnloadIntervalMinutes,
		UpdatedAt:             w.UpdatedAt,
	}
}
