package create_blackout

import (
	"errors"
	"net/http"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/service/blackouts"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidBlackout    = "dados da indisponibilidade inválidos"
	msgStaffOnly          = "acesso restrito à equipe do pátio"
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

// Handle POST /api/v1/indisponibilidades
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffFromContext(r.Context()) {
		h.logger.Warn("POST /indisponibilidades - Access denied: staff role required")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var req CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /indisponibilidades - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /indisponibilidades - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blackouts.ErrInvalidInput):
			h.logger.Warn("POST /indisponibilidades - Invalid blackout: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlackout)

		default:
			h.logger.Error("POST /indisponibilidades - Failed to create blackout: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /indisponibilidades - Blackout created successfully: blackout_id=%d, date=%s",
		result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
