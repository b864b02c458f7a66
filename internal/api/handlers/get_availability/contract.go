package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	GetAvailability(ctx context.Context, date string) (*domain.AvailabilitySummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
