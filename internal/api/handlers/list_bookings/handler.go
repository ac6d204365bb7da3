package list_bookings

import (
	"errors"
	"net/http"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/service/bookings"
)

const (
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidFilter = "filtro de tipo ou status inválido"
	msgStaffOnly     = "acesso restrito à equipe do pátio"
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

// Handle GET /api/v1/agendamentos
// Query params: data, TipoAgendamento, status, incluirInativos (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffFromContext(r.Context()) {
		h.logger.Warn("GET /agendamentos - Access denied: staff role required")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	query := r.URL.Query()
	includeInactive := query.Get("incluirInativos") == "true"

	req, err := ToServiceRequest(query.Get("data"), query.Get("TipoAgendamento"), query.Get("status"), includeInactive)
	if err != nil {
		h.logger.Warn("GET /agendamentos - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /agendamentos - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /agendamentos - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendamentos - Bookings retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
