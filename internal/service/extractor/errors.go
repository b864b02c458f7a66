package extractor

import "errors"

var (
	// ErrExtraction не удалось получить ответ модели
	ErrExtraction = errors.New("extractor: extraction failed")
)
