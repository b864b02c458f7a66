package get_working_hours

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

// Handle GET /api/v1/parking/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.GetWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/working-hours - Failed to get working hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(hours))
}
