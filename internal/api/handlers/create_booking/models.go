package create_booking

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	createBooking "github.com/logisync/scheduling-service/internal/usecase/create_booking"
	"github.com/logisync/scheduling-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Type         string  `json:"tipo"`          // "carga" | "descarga"
	Date         string  `json:"data"`          // "2026-09-15"
	StartTime    string  `json:"horarioInicio"` // "10:00"
	VehiclePlate *string `json:"placaVeiculo,omitempty"`
	ProductName  *string `json:"produto,omitempty"`
	Notes        *string `json:"observacoes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"usuarioId"`
	Type         string  `json:"tipo"`
	Date         string  `json:"data"`
	StartTime    string  `json:"horarioInicio"`
	EndTime      string  `json:"horarioFim"`
	Status       string  `json:"status"`
	VehiclePlate *string `json:"placaVeiculo,omitempty"`
	ProductName  *string `json:"produto,omitempty"`
	Notes        *string `json:"observacoes,omitempty"`
	CreatedAt    string  `json:"criadoEm"`
	UpdatedAt    string  `json:"atualizadoEm"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		Type:         domain.BookingType(r.Type),
		Date:         date,
		StartTime:    startTime,
		VehiclePlate: r.VehiclePlate,
		ProductName:  r.ProductName,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP body.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		Type:         string(resp.Type),
		Date:         resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		VehiclePlate: resp.VehiclePlate,
		ProductName:  resp.ProductName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
