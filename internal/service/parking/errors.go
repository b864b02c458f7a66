package parking

import "errors"

var (
	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("parking: invalid date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parking: internal error")
)
