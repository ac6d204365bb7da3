package list_blackouts

import (
	"net/http"
	"time"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/domain"
)

const (
	msgMissingDate = "data é obrigatória"
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
	msgStaffOnly   = "acesso restrito à equipe do pátio"
)

type Handler struct {
	service BlackoutsService
	logger  Logger
}

func NewHandler(service BlackoutsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/indisponibilidades
// Query params: data (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffFromContext(r.Context()) {
		h.logger.Warn("GET /indisponibilidades - Access denied: staff role required")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	dateStr := r.URL.Query().Get("data")
	if dateStr == "" {
		h.logger.Warn("GET /indisponibilidades - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /indisponibilidades - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /indisponibilidades - Failed to list blackouts: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /indisponibilidades - Blackouts retrieved successfully: date=%s, count=%d",
		dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
