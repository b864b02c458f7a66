package confirm_reservation

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ConfirmationLog локальный журнал подтверждений
type ConfirmationLog interface {
	Append(event domain.ConfirmedReservationEvent) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
