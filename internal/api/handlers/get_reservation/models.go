package get_reservation

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// StatusResponse публичный статус заявки, без персональных данных клиента
type StatusResponse struct {
	ID           int64      `json:"id"`
	Status       string     `json:"status"`
	PeriodStart  string     `json:"period_start"`
	PeriodEnd    string     `json:"period_end"`
	AdminComment string     `json:"admin_comment,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}

func FromDomainReservation(r *domain.ReservationRequest) StatusResponse {
	return StatusResponse{
		ID:           r.ID,
		Status:       string(r.Status),
		PeriodStart:  r.PeriodStart,
		PeriodEnd:    r.PeriodEnd,
		AdminComment: r.AdminComment,
		DecidedAt:    r.DecidedAt,
	}
}
