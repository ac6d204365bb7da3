package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	getAvailableSlots "github.com/logisync/scheduling-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate          = "data é obrigatória"
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingType          = "tipo de agendamento é obrigatório"
	msgInvalidInput         = "data ou tipo de agendamento inválido"
	msgServiceNotConfigured = "expediente não configurado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/horarios/disponiveis
// Query params: data (required, YYYY-MM-DD), TipoAgendamento (required, carga|descarga)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extract date from query params
	dateStr := r.URL.Query().Get("data")
	if dateStr == "" {
		h.logger.Warn("GET /horarios/disponiveis - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Extract booking type from query params
	typeStr := r.URL.Query().Get("TipoAgendamento")
	if typeStr == "" {
		h.logger.Warn("GET /horarios/disponiveis - Missing booking type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	// Build the use case request (parses the date)
	useCaseReq, err := ToUseCaseRequest(dateStr, typeStr)
	if err != nil {
		h.logger.Warn("GET /horarios/disponiveis - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Call the use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /horarios/disponiveis - Invalid input: date=%s, type=%s", dateStr, typeStr)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrScheduleNotConfigured):
			h.logger.Warn("GET /horarios/disponiveis - Working window not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceNotConfigured)

		default:
			h.logger.Error("GET /horarios/disponiveis - Failed to get slots: date=%s, type=%s, error=%v",
				dateStr, typeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /horarios/disponiveis - Slots retrieved successfully: date=%s, type=%s, slots_count=%d",
		dateStr, typeStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
