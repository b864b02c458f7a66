package confirm_reservation

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "не заполнены обязательные поля: "
	msgMultilineFields    = "поля не должны содержать перевод строки: "
	msgWriteFailed        = "не удалось записать подтверждение"

	statusWritten = "written"
)

type Handler struct {
	log          ConfirmationLog
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(log ConfirmationLog, logger Logger) *Handler {
	return &Handler{
		log:          log,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle POST /confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmedRequest
	if err := handlers.DecodeJSONAllowUnknown(r, &req); err != nil {
		h.logger.Warn("POST /confirmed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		h.logger.Warn("POST /confirmed - Missing fields: %v", missing)
		handlers.RespondBadRequest(w, msgMissingFields+strings.Join(missing, ", "))
		return
	}

	if multiline := req.multilineFields(); len(multiline) > 0 {
		h.logger.Warn("POST /confirmed - Line breaks in fields: %v", multiline)
		handlers.RespondBadRequest(w, msgMultilineFields+strings.Join(multiline, ", "))
		return
	}

	// время одобрения не пришло - ставим текущее
	approvalTime := strings.TrimSpace(req.ApprovalTime)
	if approvalTime == "" {
		approvalTime = domain.FormatApprovalTime(h.timeProvider.Now())
	}

	path, err := h.log.Append(req.toDomain(approvalTime))
	if err != nil {
		h.logger.Error("POST /confirmed - Failed to write confirmation: car_number=%s, error=%v", req.CarNumber, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgWriteFailed)
		return
	}

	h.logger.Info("POST /confirmed - Confirmation written: car_number=%s, file=%s", req.CarNumber, path)
	handlers.RespondJSON(w, http.StatusOK, ConfirmedResponse{Status: statusWritten, File: path})
}
