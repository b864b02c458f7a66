package handle_turn

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReservationStore интерфейс хранилища заявок
type ReservationStore interface {
	Create(ctx context.Context, draft domain.Draft) (int64, error)
	GetStatus(ctx context.Context, id int64) (*domain.ReservationRequest, bool, error)
}

// Extractor достаёт поля заявки из текста сообщения
type Extractor interface {
	Extract(ctx context.Context, message string) (domain.Draft, error)
}

// Answerer отвечает на общий вопрос
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
