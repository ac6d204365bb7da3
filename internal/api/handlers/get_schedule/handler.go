package get_schedule

import (
	"errors"
	"net/http"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/service/schedule"
)

const msgNotConfigured = "expediente não configurado"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/expediente
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotConfigured):
			h.logger.Warn("GET /expediente - Working window not configured")
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("GET /expediente - Failed to get working window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /expediente - Working window retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
