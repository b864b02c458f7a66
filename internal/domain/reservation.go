package domain

import (
	"strings"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation request
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRefused  ReservationStatus = "refused"
)

// IsTerminal returns true for statuses a request can never leave
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRefused
}

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s.IsTerminal()
}

// ReservationRequest is a customer's parking reservation awaiting or past an administrator decision
type ReservationRequest struct {
	ID          int64
	Name        string
	Surname     string
	CarNumber   string
	PeriodStart string // opaque, e.g. "2025-02-22 09:00"
	PeriodEnd   string
	Status      ReservationStatus

	AdminComment string // empty when the administrator left none

	CreatedAt time.Time
	DecidedAt *time.Time // set once, at the transition out of pending
}

// IsPending returns true if the request still awaits a decision
func (r *ReservationRequest) IsPending() bool {
	return r.Status == StatusPending
}

// FullName returns "<name> <surname>"
func (r *ReservationRequest) FullName() string {
	return strings.TrimSpace(r.Name + " " + r.Surname)
}

// Draft holds the reservation fields extracted from a user message.
// Any field may be empty until the user has supplied it.
type Draft struct {
	Name        string
	Surname     string
	CarNumber   string
	PeriodStart string
	PeriodEnd   string
}

// Normalize trims surrounding whitespace from every field
func (d Draft) Normalize() Draft {
	return Draft{
		Name:        strings.TrimSpace(d.Name),
		Surname:     strings.TrimSpace(d.Surname),
		CarNumber:   strings.TrimSpace(d.CarNumber),
		PeriodStart: strings.TrimSpace(d.PeriodStart),
		PeriodEnd:   strings.TrimSpace(d.PeriodEnd),
	}
}

// MissingFields lists the field keys that are empty after trimming
func (d Draft) MissingFields() []string {
	n := d.Normalize()
	values := map[string]string{
		FieldName:        n.Name,
		FieldSurname:     n.Surname,
		FieldCarNumber:   n.CarNumber,
		FieldPeriodStart: n.PeriodStart,
		FieldPeriodEnd:   n.PeriodEnd,
	}

	missing := make([]string, 0)
	for _, key := range ReservationFields {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// MultilineFields lists the field keys whose trimmed values still contain a line break
func (d Draft) MultilineFields() []string {
	n := d.Normalize()
	return multilineFields([]fieldValue{
		{FieldName, n.Name},
		{FieldSurname, n.Surname},
		{FieldCarNumber, n.CarNumber},
		{FieldPeriodStart, n.PeriodStart},
		{FieldPeriodEnd, n.PeriodEnd},
	})
}

// IsComplete returns true if all five fields are present
func (d Draft) IsComplete() bool {
	return len(d.MissingFields()) == 0
}

// Set assigns a field by its key. Unknown keys are ignored and reported as false.
func (d *Draft) Set(key, value string) bool {
	switch key {
	case FieldName:
		d.Name = value
	case FieldSurname:
		d.Surname = value
	case FieldCarNumber:
		d.CarNumber = value
	case FieldPeriodStart:
		d.PeriodStart = value
	case FieldPeriodEnd:
		d.PeriodEnd = value
	default:
		return false
	}
	return true
}
