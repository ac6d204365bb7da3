package update_schedule

import (
	"errors"
	"net/http"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidWindow      = "expediente inválido"
	msgStaffOnly          = "acesso restrito à equipe do pátio"
)

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

// Handle PUT /api/v1/expediente
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffFromContext(r.Context()) {
		h.logger.Warn("PUT /expediente - Access denied: staff role required")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var req UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /expediente - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWindow):
			h.logger.Warn("PUT /expediente - Invalid working window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /expediente - Failed to update working window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /expediente - Working window updated successfully: %s-%s",
		req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
