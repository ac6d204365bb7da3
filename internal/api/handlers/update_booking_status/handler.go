package update_booking_status

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
	msgStaffOnly          = "acesso restrito à equipe do pátio"
	msgInvalidStatus      = "status inválido"
	msgInvalidTransition  = "transição de status não permitida"
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

// Handle PATCH /api/v1/agendamentos/{agendamentoId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /agendamentos/{id}/status - Missing user identity in context")
		handlers.RespondInternalError(w)
		return
	}
	isStaff := middleware.IsStaffFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["agendamentoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /agendamentos/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /agendamentos/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateStatusRequest{
		UserID:  userID,
		IsStaff: isStaff,
		Status:  req.Status,
	}

	if err := h.service.UpdateStatus(r.Context(), bookingID, serviceReq); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /agendamentos/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /agendamentos/{id}/status - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgStaffOnly)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /agendamentos/{id}/status - Invalid status: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /agendamentos/{id}/status - Transition not allowed: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /agendamentos/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /agendamentos/{id}/status - Status updated successfully: booking_id=%d, status=%s",
		bookingID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
