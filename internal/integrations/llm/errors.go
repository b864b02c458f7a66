package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable провайдер недоступен (сеть, таймаут)
	ErrUnavailable = errors.New("llm client: provider unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("llm client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("llm client: invalid response")
)

// ProviderError ошибка, возвращённая API провайдера
type ProviderError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("llm client: provider error (HTTP %d, %s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("llm client: provider error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsRateLimited true для 429
func (e *ProviderError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
