package handlers

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReservationResponse заявка в ответах API
type ReservationResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	CarNumber    string     `json:"car_number"`
	PeriodStart  string     `json:"period_start"`
	PeriodEnd    string     `json:"period_end"`
	Status       string     `json:"status"`
	AdminComment string     `json:"admin_comment"`
	CreatedAt    time.Time  `json:"created_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}

// FromDomainReservation конвертирует заявку в ответ API
func FromDomainReservation(r *domain.ReservationRequest) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		Name:         r.Name,
		Surname:      r.Surname,
		CarNumber:    r.CarNumber,
		PeriodStart:  r.PeriodStart,
		PeriodEnd:    r.PeriodEnd,
		Status:       string(r.Status),
		AdminComment: r.AdminComment,
		CreatedAt:    r.CreatedAt,
		DecidedAt:    r.DecidedAt,
	}
}
