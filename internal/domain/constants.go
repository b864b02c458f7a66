package domain

import "time"

// Reservation field keys, in the order they are asked for
const (
	FieldName        = "name"
	FieldSurname     = "surname"
	FieldCarNumber   = "car_number"
	FieldPeriodStart = "period_start"
	FieldPeriodEnd   = "period_end"

	// только в подтверждении
	FieldApprovalTime = "approval_time"
)

// ReservationFields all fields a draft needs before it can be submitted
var ReservationFields = []string{
	FieldName,
	FieldSurname,
	FieldCarNumber,
	FieldPeriodStart,
	FieldPeriodEnd,
}

// Time format constants
const (
	DateFormat         = "2006-01-02" // YYYY-MM-DD
	ApprovalTimeFormat = time.RFC3339
)

// DefaultConfirmedReservationsFile local confirmation log used when nothing else is configured
const DefaultConfirmedReservationsFile = "data/confirmed_reservations.txt"
