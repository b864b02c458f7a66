package domain

// WorkingHours opening hours of the garage for one day of the week
type WorkingHours struct {
	Day   string
	Open  string // HH:MM
	Close string // HH:MM, "00:00" means midnight
}

// Price tariff for one space type, EUR
type Price struct {
	SpaceType string
	FirstHour float64
	NextHours float64
	DayMax    float64
}

// AvailabilitySummary free vs total hourly slots for a date
type AvailabilitySummary struct {
	Date      string // YYYY-MM-DD
	Available int
	Total     int
}
