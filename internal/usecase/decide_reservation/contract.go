package decide_reservation

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/dispatcher"
)

// ReservationService интерфейс хранилища заявок
type ReservationService interface {
	ListPending(ctx context.Context) ([]*domain.ReservationRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error)
	Decide(ctx context.Context, id int64, status domain.ReservationStatus, comment string) (*domain.ReservationRequest, error)
}

// Dispatcher доставка подтверждённых бронирований
type Dispatcher interface {
	Dispatch(ctx context.Context, event domain.ConfirmedReservationEvent) (*dispatcher.Result, error)
}

// Summarizer краткое описание заявки для администратора
type Summarizer interface {
	Summarize(ctx context.Context, req *domain.ReservationRequest) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
