package handle_turn

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	handleTurn "github.com/m04kA/SMC-ParkingService/internal/usecase/handle_turn"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "Please enter a message."
)

type Handler struct {
	useCase HandleTurnUseCase
	logger  Logger
}

func NewHandler(useCase HandleTurnUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turns - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &handleTurn.Request{Message: req.Message})
	if err != nil {
		if errors.Is(err, handleTurn.ErrEmptyMessage) {
			h.logger.Warn("POST /turns - Empty message")
			handlers.RespondBadRequest(w, msgEmptyMessage)
			return
		}
		h.logger.Error("POST /turns - Failed to handle turn: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /turns - Turn handled: route=%s", result.Route)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
