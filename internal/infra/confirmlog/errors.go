package confirmlog

import "errors"

var (
	// ErrWrite ошибка записи в журнал подтверждений
	ErrWrite = errors.New("confirmlog: failed to append confirmed reservation")

	// ErrMultiline поле события содержит перевод строки и разорвало бы запись
	ErrMultiline = errors.New("confirmlog: line break in confirmed reservation field")
)
