package update_schedule

import (
	"time"

	"github.com/logisync/scheduling-service/internal/service/schedule/models"
)

// UpdateWindowRequest HTTP request model
type UpdateWindowRequest struct {
	StartTime             string `json:"horarioInicio"` // "08:00"
	EndTime               string `json:"horarioFim"`    // "18:00"
	LoadIntervalMinutes   int    `json:"intervaloCargaMinutos"`
	UnloadIntervalMinutes int    `json:"intervaloDescargaMinutos"`
}

// WorkingWindowResponse HTTP response model
type WorkingWindowResponse struct {
	StartTime             string `json:"horarioInicio"`
	EndTime               string `json:"horarioFim"`
	LoadIntervalMinutes   int    `json:"intervaloCargaMinutos"`
	UnloadIntervalMinutes int    `json:"intervaloDescargaMinutos"`
	UpdatedAt             string `json:"atualizadoEm"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateWindowRequest) ToServiceRequest() *models.UpsertWindowRequest {
	return &models.UpsertWindowRequest{
		StartTime:             r.StartTime,
		EndTime:               r.EndTime,
		LoadIntervalMinutes:   r.LoadIntervalMinutes,
		UnloadIntervalMinutes: r.UnloadIntervalMinutes,
	}
}

// FromServiceResponse converts the service response into the HTTP body.
func FromServiceResponse(resp *models.WorkingWindowResponse) *WorkingWindowResponse {
	return &WorkingWindowResponse{
		StartTime:             resp.StartTime,
		EndTime:               resp.EndTime,
		LoadIntervalMinutes:   resp.LoadIntervalMinutes,
		UnloadIntervalMinutes: resp.UnloadIntervalMinutes,
		UpdatedAt:             resp.UpdatedAt.Format(time.RFC3339),
	}
}
