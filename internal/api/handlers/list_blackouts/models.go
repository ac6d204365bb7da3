package list_blackouts

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/internal/service/blackouts/models"
)

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

// BlackoutListResponse HTTP response model
type BlackoutListResponse struct {
	Blackouts []BlackoutResponse `json:"indisponibilidades"`
	Total     int                `json:"total"`
}

// FromServiceResponse converts the service response into the HTTP body.
func FromServiceResponse(resp *models.BlackoutListResponse) *BlackoutListResponse {
	blackouts := make([]BlackoutResponse, len(resp.Blackouts))
	for i, b := range resp.Blackouts {
		blackouts[i] = BlackoutResponse{
			ID:        b.ID,
			Date:      b.Date.Format(domain.DateFormat),
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Type:      b.Type,
			Reason:    b.Reason,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &BlackoutListResponse{
		Blackouts: blackouts,
		Total:     resp.Total,
	}
}
