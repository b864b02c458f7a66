package handle_turn

import handleTurn "github.com/m04kA/SMC-ParkingService/internal/usecase/handle_turn"

// TurnRequest тело POST /turns
type TurnRequest struct {
	Message string `json:"message"`
}

// TurnResponse ответ на сообщение
type TurnResponse struct {
	Route         string `json:"route"`
	Reply         string `json:"reply"`
	ReservationID *int64 `json:"reservation_id,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *handleTurn.Response) TurnResponse {
	return TurnResponse{
		Route:         string(resp.Route),
		Reply:         resp.Reply,
		ReservationID: resp.ReservationID,
	}
}
