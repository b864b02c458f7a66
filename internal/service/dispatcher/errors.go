package dispatcher

import "errors"

var (
	// ErrLocalWrite запись в локальный журнал не удалась, событие не сохранено
	ErrLocalWrite = errors.New("dispatcher: local write failed")
)
