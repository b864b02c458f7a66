package list_pending_reservations

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const msgInvalidSummaryFlag = "параметр summary должен быть true или false"

type Handler struct {
	useCase ReviewUseCase
	logger  Logger
}

func NewHandler(useCase ReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/pending?summary=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	withSummary := false
	if raw := r.URL.Query().Get("summary"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /reservations/pending - Invalid summary flag: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidSummaryFlag)
			return
		}
		withSummary = parsed
	}

	items, err := h.useCase.Review(r.Context(), withSummary)
	if err != nil {
		h.logger.Error("GET /reservations/pending - Failed to list pending reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/pending - Pending reservations retrieved: count=%d", len(items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseItems(items))
}
