package decide_reservation

import (
	"context"

	decideReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

type DecideReservationUseCase interface {
	Execute(ctx context.Context, req *decideReservation.Request) (*decideReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
