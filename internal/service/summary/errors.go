package summary

import "errors"

var (
	// ErrNotConfigured LLM не настроен
	ErrNotConfigured = errors.New("summary: llm is not configured")

	// ErrSummarize модель не вернула сводку
	ErrSummarize = errors.New("summary: summarize failed")
)
