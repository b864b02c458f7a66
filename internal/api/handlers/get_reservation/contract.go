package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
