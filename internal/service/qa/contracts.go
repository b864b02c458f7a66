package qa

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParkingRepository справочные данные для контекста ответа
type ParkingRepository interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error)
	GetPrices(ctx context.Context) ([]domain.Price, error)
	GetAvailabilitySummary(ctx context.Context, date string) (*domain.AvailabilitySummary, error)
}

// Completer интерфейс LLM клиента
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
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
