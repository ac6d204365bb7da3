package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identificador de agendamento inválido"
	msgBookingNotFound  = "agendamento não encontrado"
	msgAccessDenied     = "acesso negado ao agendamento"
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

// Handle GET /api/v1/agendamentos/{agendamentoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /agendamentos/{id} - Missing user identity in context")
		handlers.RespondInternalError(w)
		return
	}
	isStaff := middleware.IsStaffFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["agendamentoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendamentos/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID, userID, isStaff)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /agendamentos/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /agendamentos/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /agendamentos/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendamentos/{id} - Booking retrieved successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
