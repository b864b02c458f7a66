package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const adminPrompt = `Format the following parking reservation request for the administrator to review.

Request ID: %d
Submitted at: %s

Customer: %s %s
Car registration: %s
Period: from %s to %s

Write a short, clear summary (2-3 lines) for the admin to approve or refuse.`

// Service краткая сводка заявки для администратора
type Service struct {
	llm    Completer
	logger Logger
}

// NewService создает сервис сводок. llm может быть nil - тогда Summarize всегда ErrNotConfigured.
func NewService(llm Completer, logger Logger) *Service {
	return &Service{llm: llm, logger: logger}
}

// Summarize просит модель описать заявку в 2-3 строках
func (s *Service) Summarize(ctx context.Context, req *domain.ReservationRequest) (string, error) {
	if s.llm == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(adminPrompt,
		req.ID, req.CreatedAt.UTC().Format(time.RFC3339),
		req.Name, req.Surname, req.CarNumber, req.PeriodStart, req.PeriodEnd)

	text, err := s.llm.Complete(ctx, "", prompt)
	if err != nil {
		s.logger.Warn("Summarize: reservation id=%d: %v", req.ID, err)
		return "", fmt.Errorf("%w: %v", ErrSummarize, err)
	}
	return text, nil
}
