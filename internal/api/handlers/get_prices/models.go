package get_prices

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// PriceResponse тариф, EUR
type PriceResponse struct {
	Type      string  `json:"type"`
	FirstHour float64 `json:"first_hour"`
	NextHours float64 `json:"next_hours"`
	DayMax    float64 `json:"day_max"`
}

func fromDomain(prices []domain.Price) []PriceResponse {
	out := make([]PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, PriceResponse{
			Type:      p.SpaceType,
			FirstHour: p.FirstHour,
			NextHours: p.NextHours,
			DayMax:    p.DayMax,
		})
	}
	return out
}
