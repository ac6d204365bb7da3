package create_blackout

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/internal/service/blackouts/models"
)

// CreateBlackoutRequest HTTP request model. Omitting the time range blocks
// the whole day; omitting the type applies the blackout to both types.
type CreateBlackoutRequest struct {
	Date      string  `json:"data"` // "2026-09-15"
	StartTime *string `json:"horarioInicio,omitempty"`
	EndTime   *string `json:"horarioFim,omitempty"`
	Type      *string `json:"tipo,omitempty"`
	Reason    *string `json:"motivo,omitempty"`
}

// BlackoutResponse HTTP response model
type BlackoutResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"data"`
	StartTime *string `json:"horarioInicio,omitempty"`
	EndTime   *string `json:"horarioFim,omitempty"`
	Type      *string `json:"tipo,omitempty"`
	Reason    *string `json:"motivo,omitempty"`
	CreatedAt string  `json:"criadoEm"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CreateBlackoutRequest) ToServiceRequest() (*models.CreateBlackoutRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlackoutRequest{
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Type:      r.Type,
		Reason:    r.Reason,
	}, nil
}

// FromServiceResponse converts the service response into the HTTP body.
func FromServiceResponse(resp *models.BlackoutResponse) *BlackoutResponse {
	return &BlackoutResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Type:      resp.Type,
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
