package list_pending_reservations

import (
	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	decideReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

// PendingReservation заявка в очереди со сводкой
type PendingReservation struct {
	handlers.ReservationResponse
	Summary      string `json:"summary,omitempty"`
	SummaryError string `json:"summary_error,omitempty"`
}

// PendingResponse ответ GET /reservations/pending
type PendingResponse struct {
	Reservations []PendingReservation `json:"reservations"`
}

// FromUseCaseItems конвертирует очередь в HTTP ответ
func FromUseCaseItems(items []decideReservation.PendingItem) PendingResponse {
	resp := PendingResponse{Reservations: make([]PendingReservation, 0, len(items))}
	for _, item := range items {
		p := PendingReservation{
			ReservationResponse: handlers.FromDomainReservation(item.Reservation),
			Summary:             item.Summary,
		}
		if item.SummaryErr != nil {
			p.SummaryError = item.SummaryErr.Error()
		}
		resp.Reservations = append(resp.Reservations, p)
	}
	return resp
}
