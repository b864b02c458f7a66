package dispatcher

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/sinkservice"
)

// RemoteSink интерфейс удалённого confirmation-sink
type RemoteSink interface {
	SendConfirmed(ctx context.Context, event domain.ConfirmedReservationEvent) (*sinkservice.ConfirmedResponse, error)
	BaseURL() string
}

// LocalLog интерфейс локального журнала подтверждений
type LocalLog interface {
	Append(event domain.ConfirmedReservationEvent) (string, error)
	Path() string
}

// DeliveryCounter счётчик доставок, реализуется *prometheus.CounterVec
type DeliveryCounter interface {
	Inc(path, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
