package decide_reservation

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/dispatcher"
)

// Action решение администратора
type Action string

const (
	ActionApprove Action = "approve"
	ActionRefuse  Action = "refuse"
	ActionSkip    Action = "skip"
)

// ParseAction принимает полные названия и однобуквенные "a", "r", "s" без учёта регистра
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "approve":
		return ActionApprove, true
	case "r", "refuse":
		return ActionRefuse, true
	case "s", "skip":
		return ActionSkip, true
	default:
		return "", false
	}
}

// Request решение по одной заявке
type Request struct {
	ReservationID int64
	Action        Action
	Comment       string
}

// Response результат решения
type Response struct {
	Reservation *domain.ReservationRequest
	Action      Action
	// Delivery nil для refuse, skip и при ошибке записи подтверждения
	Delivery *dispatcher.Result
	// Warning непустой, если заявка одобрена, но подтверждение записать не удалось
	Warning string
}

// PendingItem заявка в очереди администратора со сводкой
type PendingItem struct {
	Reservation *domain.ReservationRequest
	Summary     string
	SummaryErr  error
}
