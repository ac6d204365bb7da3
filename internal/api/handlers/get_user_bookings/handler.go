package get_user_bookings

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
	msgInvalidUserID = "identificador de usuário inválido"
	msgInvalidStatus = "status inválido"
	msgAccessDenied  = "acesso negado aos agendamentos de outro usuário"
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

// Handle GET /api/v1/usuarios/{usuarioId}/agendamentos
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /usuarios/{id}/agendamentos - Missing user identity in context")
		handlers.RespondInternalError(w)
		return
	}
	isStaff := middleware.IsStaffFromContext(r.Context())

	vars := mux.Vars(r)
	targetID, err := strconv.ParseInt(vars["usuarioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /usuarios/{id}/agendamentos - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Drivers may only list their own history
	if targetID != callerID && !isStaff {
		h.logger.Warn("GET /usuarios/{id}/agendamentos - Access denied: caller=%d, target=%d", callerID, targetID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: targetID}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /usuarios/{id}/agendamentos - Invalid status filter: user_id=%d", targetID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /usuarios/{id}/agendamentos - Failed to list bookings: user_id=%d, error=%v",
				targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /usuarios/{id}/agendamentos - Bookings retrieved successfully: user_id=%d, count=%d",
		targetID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
