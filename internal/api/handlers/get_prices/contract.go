package get_prices

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	GetPrices(ctx context.Context) ([]domain.Price, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
