package create_booking

import (
	"errors"
	"net/http"

	"github.com/logisync/scheduling-service/internal/api/handlers"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	createBooking "github.com/logisync/scheduling-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDateOrTime    = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgInvalidInput         = "dados do agendamento inválidos"
	msgPastDate             = "a data do agendamento já passou"
	msgDayUnavailable       = "o dia selecionado está indisponível"
	msgSlotUnavailable      = "o horário selecionado está indisponível"
	msgInvalidTimeSlot      = "horário fora da grade de agendamento"
	msgSlotNotAvailable     = "o horário selecionado já está reservado"
	msgServiceNotConfigured = "expediente não configurado"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/agendamentos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /agendamentos - Missing user identity in context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendamentos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Build the use case request (parses date and time)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /agendamentos - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Call the use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /agendamentos - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /agendamentos - Booking date in the past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /agendamentos - Time slot off the grid: user_id=%d, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrDayUnavailable):
			h.logger.Warn("POST /agendamentos - Day unavailable: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayUnavailable)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /agendamentos - Slot unavailable: user_id=%d, date=%s, start=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /agendamentos - Slot already booked: user_id=%d, date=%s, start=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrScheduleNotConfigured):
			h.logger.Warn("POST /agendamentos - Working window not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceNotConfigured)

		default:
			h.logger.Error("POST /agendamentos - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /agendamentos - Booking created successfully: booking_id=%d, user_id=%d, date=%s, start=%s",
		result.ID, userID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
