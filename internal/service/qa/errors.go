package qa

import "errors"

var (
	// ErrAnswer модель не смогла ответить
	ErrAnswer = errors.New("qa: answer failed")
)
