package get_user_bookings

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
	CreatedAt          string  `json:"criadoEm"`
	UpdatedAt          string  `json:"atualizadoEm"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"agendamentos"`
	Total    int               `json:"total"`
}

// FromServiceResponse converts the service response into the HTTP body.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = BookingResponse{
			ID:                 b.ID,
			UserID:             b.UserID,
			Type:               b.Type,
			Date:               b.BookingDate.Format(domain.DateFormat),
			StartTime:          b.StartTime,
			EndTime:            b.EndTime,
			Status:             b.Status,
			VehiclePlate:       b.VehiclePlate,
			ProductName:        b.ProductName,
			Notes:              b.Notes,
			CancellationReason: b.CancellationReason,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &BookingListResponse{
		Bookings: bookings,
		Total:    resp.Total,
	}
}
