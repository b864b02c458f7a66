package confirm_reservation

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ConfirmedRequest тело POST /confirmed
type ConfirmedRequest struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	CarNumber    string `json:"car_number"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	ApprovalTime string `json:"approval_time,omitempty"`
}

// ConfirmedResponse ответ на успешную запись
type ConfirmedResponse struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// missingFields обязательные поля, пришедшие пустыми
func (r ConfirmedRequest) missingFields() []string {
	fields := []struct {
		key, value string
	}{
		{domain.FieldName, r.Name},
		{domain.FieldSurname, r.Surname},
		{domain.FieldCarNumber, r.CarNumber},
		{domain.FieldPeriodStart, r.PeriodStart},
		{domain.FieldPeriodEnd, r.PeriodEnd},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// multilineFields поля с переводом строки: такая запись разорвала бы журнал на несколько строк
func (r ConfirmedRequest) multilineFields() []string {
	return r.toDomain(r.ApprovalTime).MultilineFields()
}

func (r ConfirmedRequest) toDomain(approvalTime string) domain.ConfirmedReservationEvent {
	return domain.ConfirmedReservationEvent{
		Name:         r.Name,
		Surname:      r.Surname,
		CarNumber:    r.CarNumber,
		PeriodStart:  r.PeriodStart,
		PeriodEnd:    r.PeriodEnd,
		ApprovalTime: approvalTime,
	}
}
