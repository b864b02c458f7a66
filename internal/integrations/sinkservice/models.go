package sinkservice

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// APIKeyHeader заголовок с общим секретом
const APIKeyHeader = "X-API-Key"

// StatusWritten статус успешной записи
const StatusWritten = "written"

// ConfirmedRequest тело POST /confirmed
type ConfirmedRequest struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	CarNumber    string `json:"car_number"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	ApprovalTime string `json:"approval_time,omitempty"`
}

// ConfirmedResponse ответ POST /confirmed
type ConfirmedResponse struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// HealthResponse ответ GET /health
type HealthResponse struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// FromDomainEvent конвертирует событие в тело запроса
func FromDomainEvent(e domain.ConfirmedReservationEvent) ConfirmedRequest {
	return ConfirmedRequest{
		Name:         e.Name,
		Surname:      e.Surname,
		CarNumber:    e.CarNumber,
		PeriodStart:  e.PeriodStart,
		PeriodEnd:    e.PeriodEnd,
		ApprovalTime: e.ApprovalTime,
	}
}
