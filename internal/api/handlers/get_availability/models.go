package get_availability

// AvailabilityResponse свободные почасовые слоты на дату
type AvailabilityResponse struct {
	Date      string `json:"date"`
	Available int    `json:"available"`
	Total     int    `json:"total"`
}
