package domain

import (
	"fmt"
	"strings"
	"time"
)

// ConfirmedReservationEvent is the record of an approved reservation delivered to the confirmation log
type ConfirmedReservationEvent struct {
	Name         string
	Surname      string
	CarNumber    string
	PeriodStart  string
	PeriodEnd    string
	ApprovalTime string
}

// NewConfirmedReservationEvent builds the event for an approved request
func NewConfirmedReservationEvent(r *ReservationRequest, approvedAt time.Time) ConfirmedReservationEvent {
	return ConfirmedReservationEvent{
		Name:         r.Name,
		Surname:      r.Surname,
		CarNumber:    r.CarNumber,
		PeriodStart:  r.PeriodStart,
		PeriodEnd:    r.PeriodEnd,
		ApprovalTime: FormatApprovalTime(approvedAt),
	}
}

// MultilineFields lists the field keys whose values contain a line break.
// Such an event cannot be written as a single log line.
func (e ConfirmedReservationEvent) MultilineFields() []string {
	return multilineFields([]fieldValue{
		{FieldName, e.Name},
		{FieldSurname, e.Surname},
		{FieldCarNumber, e.CarNumber},
		{FieldPeriodStart, e.PeriodStart},
		{FieldPeriodEnd, e.PeriodEnd},
		{FieldApprovalTime, e.ApprovalTime},
	})
}

// Line renders the event as one confirmation log line, newline included:
//
//	John Doe | AB-1234 | 2025-02-22 09:00 to 2025-02-22 17:00 | 2025-02-22T08:00:00Z
func (e ConfirmedReservationEvent) Line() string {
	fullName := strings.TrimSpace(e.Name + " " + e.Surname)
	return fmt.Sprintf("%s | %s | %s to %s | %s\n", fullName, e.CarNumber, e.PeriodStart, e.PeriodEnd, e.ApprovalTime)
}

// FormatApprovalTime formats a decision time as RFC3339 in UTC
func FormatApprovalTime(t time.Time) string {
	return t.UTC().Format(ApprovalTimeFormat)
}

type fieldValue struct {
	key, value string
}

// HasLineBreak reports whether s contains CR or LF
func HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

func multilineFields(fields []fieldValue) []string {
	var keys []string
	for _, f := range fields {
		if HasLineBreak(f.value) {
			keys = append(keys, f.key)
		}
	}
	return keys
}
