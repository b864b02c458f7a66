package get_prices

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking/prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	prices, err := h.service.GetPrices(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/prices - Failed to get prices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(prices))
}
