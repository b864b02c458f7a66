package get_working_hours

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// WorkingHoursResponse часы работы одного дня
type WorkingHoursResponse struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

func fromDomain(hours []domain.WorkingHours) []WorkingHoursResponse {
	out := make([]WorkingHoursResponse, 0, len(hours))
	for _, h := range hours {
		out = append(out, WorkingHoursResponse{Day: h.Day, Open: h.Open, Close: h.Close})
	}
	return out
}
