package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/service/bookings"
	"github.com/logisync/scheduling-service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "identificador de agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgBookingNotFound    = "agendamento não encontrado"
	msgAccessDenied       = "acesso negado ao agendamento"
	msgCannotCancel       = "o agendamento não pode mais ser cancelado"
	msgInvalidReason      = "motivo de cancelamento inválido"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/agendamentos/{agendamentoId}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /agendamentos/{id}/cancelar - Missing user identity in context")
		handlers.RespondInternalError(w)
		return
	}
	isStaff := middleware.IsStaffFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["agendamentoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /agendamentos/{id}/cancelar - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /agendamentos/{id}/cancelar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CancelBookingRequest{
		UserID:             userID,
		IsStaff:            isStaff,
		CancellationReason: req.CancellationReason,
	}

	if err := h.service.Cancel(r.Context(), bookingID, serviceReq); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /agendamentos/{id}/cancelar - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /agendamentos/{id}/cancelar - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /agendamentos/{id}/cancelar - Booking not cancellable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /agendamentos/{id}/cancelar - Invalid cancellation reason: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("PATCH /agendamentos/{id}/cancelar - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /agendamentos/{id}/cancelar - Booking cancelled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
