package get_schedule

import (
	"time"

	"github.com/logisync/scheduling-service/internal/service/schedule/models"
)

// WorkingWindowResponse HTTP response model
type WorkingWindowResponse struct {
	StartTime             string `json:"horarioInicio"`
	EndTime               string `json:"horarioFim"`
	LoadIntervalMinutes   int    `json:"intervaloCargaMinutos"`
	UnloadIntervalMinutes int    `json:"intervaloDescargaMinutos"`
	UpdatedAt             string `json:"atualizadoEm"`
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
