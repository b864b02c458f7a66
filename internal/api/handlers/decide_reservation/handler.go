package decide_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	decideReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный ID заявки"
	msgInvalidAction        = "действие должно быть approve, refuse или skip"
	msgNotFound             = "заявка не найдена"
	msgAlreadyDecided       = "решение по заявке уже принято"
)

type Handler struct {
	useCase DecideReservationUseCase
	logger  Logger
}

func NewHandler(useCase DecideReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("POST /reservations/{id}/decision - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req DecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, ok := decideReservation.ParseAction(req.Action)
	if !ok {
		h.logger.Warn("POST /reservations/{id}/decision - Invalid action: %q", req.Action)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &decideReservation.Request{
		ReservationID: reservationID,
		Action:        action,
		Comment:       req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, decideReservation.ErrNotFound):
			h.logger.Warn("POST /reservations/{id}/decision - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, decideReservation.ErrAlreadyDecided):
			h.logger.Warn("POST /reservations/{id}/decision - Already decided: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		case errors.Is(err, decideReservation.ErrInvalidAction):
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("POST /reservations/{id}/decision - Failed to decide: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Warning != "" {
		h.logger.Warn("POST /reservations/{id}/decision - %s: reservation_id=%d", result.Warning, reservationID)
	}
	h.logger.Info("POST /reservations/{id}/decision - Decision applied: reservation_id=%d, action=%s", reservationID, action)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
