package get_booking

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"usuarioId"`
	Type               string  `json:"tipo"`
	Date               string  `json:"data"`
	StartTime          string  `json:"horarioInicio"`
	EndTime            string  `json:"horarioFim"`
	Status             string  `json:"status"`
	VehiclePlate       *string `json:"placaVeiculo,omitempty"`
	ProductName        *string `json:"produto,omitempty"`
	Notes              *string `json:"observacoes,omitempty"`
	CancellationReason *string `json:"motivoCancelamento,omitempty"`
	CancelledAt        *string `json:"canceladoEm,omitempty"`
	CreatedAt          string  `json:"criadoEm"`
	UpdatedAt          string  `json:"atualizadoEm"`
}

// FromServiceResponse converts the service response into the HTTP body.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		UserID:             resp.UserID,
		Type:               resp.Type,
		Date:               resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime,
		EndTime:            resp.EndTime,
		Status:             resp.Status,
		VehiclePlate:       resp.VehiclePlate,
		ProductName:        resp.ProductName,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}

	return out
}
