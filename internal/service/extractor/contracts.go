package extractor

import "context"

// Completer интерфейс LLM клиента
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
