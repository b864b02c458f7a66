package handle_turn

// Route путь, по которому обработано сообщение
type Route string

const (
	RouteStatusQuery  Route = "status_query"
	RouteSubmission   Route = "submission"
	RouteGeneralQuery Route = "general_query"
)

// Request одно сообщение пользователя
type Request struct {
	Message string
}

// Response ответ на сообщение
type Response struct {
	Route Route
	Reply string
	// ReservationID ID заявки, о которой идёт речь (созданной или запрошенной), иначе nil
	ReservationID *int64
}
