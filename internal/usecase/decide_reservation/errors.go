package decide_reservation

import "errors"

var (
	// ErrInvalidAction действие не approve, refuse или skip
	ErrInvalidAction = errors.New("decide_reservation: invalid action")

	// ErrNotFound заявка не найдена
	ErrNotFound = errors.New("decide_reservation: reservation not found")

	// ErrAlreadyDecided решение по заявке уже принято
	ErrAlreadyDecided = errors.New("decide_reservation: reservation already decided")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_reservation: internal error")
)
