package health

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

// Response ответ GET /health
type Response struct {
	Status string `json:"status"`
	File   string `json:"file,omitempty"`
}

type Handler struct {
	file string
}

// NewHandler file - путь к журналу подтверждений, пустой для сервисов без журнала
func NewHandler(file string) *Handler {
	return &Handler{file: file}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", File: h.file})
}
