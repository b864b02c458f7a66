package decide_reservation

import (
	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	decideReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

// DecisionRequest тело POST /reservations/{id}/decision
type DecisionRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment,omitempty"`
}

// DeliveryResponse куда записано подтверждение
type DeliveryResponse struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

// DecisionResponse результат решения
type DecisionResponse struct {
	Action      string                       `json:"action"`
	Reservation handlers.ReservationResponse `json:"reservation"`
	Delivery    *DeliveryResponse            `json:"delivery,omitempty"`
	Warning     string                       `json:"warning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *decideReservation.Response) DecisionResponse {
	out := DecisionResponse{
		Action:      string(resp.Action),
		Reservation: handlers.FromDomainReservation(resp.Reservation),
		Warning:     resp.Warning,
	}
	if resp.Delivery != nil {
		out.Delivery = &DeliveryResponse{
			Path: string(resp.Delivery.Path),
			File: resp.Delivery.File,
		}
	}
	return out
}
