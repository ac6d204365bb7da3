package delete_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/service/blackouts"
)

const (
	msgInvalidBlackoutID = "identificador de indisponibilidade inválido"
	msgBlackoutNotFound  = "indisponibilidade não encontrada"
	msgStaffOnly         = "acesso restrito à equipe do pátio"
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

// Handle DELETE /api/v1/indisponibilidades/{indisponibilidadeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffFromContext(r.Context()) {
		h.logger.Warn("DELETE /indisponibilidades/{id} - Access denied: staff role required")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	vars := mux.Vars(r)
	blackoutID, err := strconv.ParseInt(vars["indisponibilidadeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /indisponibilidades/{id} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	if err := h.service.Delete(r.Context(), blackoutID); err != nil {
		switch {
		case errors.Is(err, blackouts.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /indisponibilidades/{id} - Blackout not found: blackout_id=%d", blackoutID)
			handlers.RespondNotFound(w, msgBlackoutNotFound)

		default:
			h.logger.Error("DELETE /indisponibilidades/{id} - Failed to delete blackout: blackout_id=%d, error=%v",
				blackoutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /indisponibilidades/{id} - Blackout deleted successfully: blackout_id=%d", blackoutID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
