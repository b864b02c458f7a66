package qa

import (
	"context"
	"fmt"
)

const systemPrompt = `You are a helpful assistant for "Central Garage" parking. Use ONLY the following context to answer.
If the user wants to make a reservation, collect: full name, surname, car registration number, and reservation period (start and end date/time).
After they provide all details, tell them their request will be sent to the administrator for approval.
If the user asks about reservation status, tell them to provide their request ID (a number they received when they submitted).
Do not invent information.

Context:
%s`

// LLMAnswerer отвечает на общий вопрос через модель с актуальным контекстом
type LLMAnswerer struct {
	llm     Completer
	context *ContextBuilder
	logger  Logger
}

// NewLLMAnswerer создает answerer поверх LLM клиента
func NewLLMAnswerer(llm Completer, contextBuilder *ContextBuilder, logger Logger) *LLMAnswerer {
	return &LLMAnswerer{llm: llm, context: contextBuilder, logger: logger}
}

// Answer возвращает ответ модели как есть
func (a *LLMAnswerer) Answer(ctx context.Context, question string) (string, error) {
	system := fmt.Sprintf(systemPrompt, a.context.Build(ctx))

	reply, err := a.llm.Complete(ctx, system, question+"\nHelpful Answer:")
	if err != nil {
		a.logger.Error("Answer: llm error: %v", err)
		return "", fmt.Errorf("%w: %v", ErrAnswer, err)
	}
	return reply, nil
}

const staticInstructions = `I can share the current parking information:

%s

To request a reservation, send all details in one message, for example:
name: John; surname: Doe; car_number: AB-1234; period_start: 2025-02-22 09:00; period_end: 2025-02-22 17:00
To check a request, ask: "What is the status of my reservation <ID>?"`

// StaticAnswerer ответ без модели: актуальные данные и подсказка по формату заявки
type StaticAnswerer struct {
	context *ContextBuilder
}

// NewStaticAnswerer создает answerer без LLM
func NewStaticAnswerer(contextBuilder *ContextBuilder) *StaticAnswerer {
	return &StaticAnswerer{context: contextBuilder}
}

// Answer никогда не возвращает ошибку
func (a *StaticAnswerer) Answer(ctx context.Context, _ string) (string, error) {
	return fmt.Sprintf(staticInstructions, a.context.Build(ctx)), nil
}
