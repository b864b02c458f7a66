package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
