package extractor

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// FieldsExtractor ищет поля заявки прямо в тексте сообщения, без сети.
// Нужен, когда LLM не настроен: пользователь пишет "name: John; surname: Doe; ...".
type FieldsExtractor struct{}

// NewFieldsExtractor создает локальный extractor
func NewFieldsExtractor() *FieldsExtractor {
	return &FieldsExtractor{}
}

// Extract возвращает найденные поля, любое из них может быть пустым
func (e *FieldsExtractor) Extract(_ context.Context, message string) (domain.Draft, error) {
	return ParseFields(message), nil
}

const extractionPrompt = `From the following message, extract parking reservation details if present.
Reply in this exact format, one per line; use empty value if not found:
name: ...
surname: ...
car_number: ...
period_start: ... (date and time, e.g. 2025-02-22 09:00)
period_end: ... (date and time, e.g. 2025-02-22 17:00)

Message:
%s`

// LLMExtractor просит модель вернуть поля в формате "key: value" и разбирает ответ
type LLMExtractor struct {
	llm    Completer
	logger Logger
}

// NewLLMExtractor создает extractor поверх LLM клиента
func NewLLMExtractor(llm Completer, logger Logger) *LLMExtractor {
	return &LLMExtractor{llm: llm, logger: logger}
}

// Extract отправляет сообщение модели. Ошибка провайдера возвращается как ErrExtraction.
func (e *LLMExtractor) Extract(ctx context.Context, message string) (domain.Draft, error) {
	reply, err := e.llm.Complete(ctx, "", fmt.Sprintf(extractionPrompt, message))
	if err != nil {
		e.logger.Warn("Extract: llm error: %v", err)
		return domain.Draft{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	draft := ParseFields(reply)
	if missing := draft.MissingFields(); len(missing) > 0 && len(missing) < len(domain.ReservationFields) {
		e.logger.Info("Extract: partial draft, missing %v", missing)
	}
	return draft, nil
}
