package list_pending_reservations

import (
	"context"

	decideReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

type ReviewUseCase interface {
	Review(ctx context.Context, withSummary bool) ([]decideReservation.PendingItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
