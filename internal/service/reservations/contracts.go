package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReservationRepository интерфейс репозитория заявок
type ReservationRepository interface {
	Create(ctx context.Context, req *domain.ReservationRequest) (*domain.ReservationRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error)
	GetByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.ReservationRequest, error)
	UpdateDecision(ctx context.Context, id int64, status domain.ReservationStatus, comment string, decidedAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider реальный провайдер времени, всегда UTC
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
