package models

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
)

// CreateBlackoutRequest declares a new blackout. Without a time range it
// blocks the whole day; without a type it applies to both booking types.
type CreateBlackoutRequest struct {
	Date      time.Time
	StartTime *string
	EndTime   *string
	Type      *string
	Reason    *string
}

// BlackoutResponse is the service-level view of a blackout.
type BlackoutResponse struct {
	ID        int64
	Date      time.Time
	StartTime *string
	EndTime   *string
	Type      *string
	Reason    *string
	CreatedAt time.Time
}

// BlackoutListResponse is a list of blackouts.
type BlackoutListResponse struct {
	Blackouts []BlackoutResponse
	Total     int
}

// FromDomainBlackout converts a domain blackout to the service response.
func FromDomainBlackout(b *domain.Blackout) *BlackoutResponse {
	resp := &BlackoutResponse{
		ID:        b.ID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}

	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}
	if b.EndTime != nil {
		e := b.EndTime.String()
		resp.EndTime = &e
	}
	if b.Type != nil {
		t := string(*b.Type)
		resp.Type = &t
	}

	return resp
}

// FromDomainBlackoutList converts a list of domain blackouts.
func FromDomainBlackoutList(blackouts []*domain.Blackout) *BlackoutListResponse {
	result := make([]BlackoutResponse, len(blackouts))
	for i, b := range blackouts {
		result[i] = *FromDomainBlackout(b)
	}
	return &BlackoutListResponse{Blackouts: result, Total: len(result)}
}
