package reservations

import "errors"

var (
	// ErrValidation не заполнено одно из обязательных полей заявки
	ErrValidation = errors.New("reservations: validation failed")

	// ErrNotFound заявка с таким ID не существует
	ErrNotFound = errors.New("reservations: reservation not found")

	// ErrAlreadyDecided заявка уже одобрена или отклонена
	ErrAlreadyDecided = errors.New("reservations: reservation already decided")

	// ErrInvalidStatus решение может быть только approved или refused
	ErrInvalidStatus = errors.New("reservations: invalid decision status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
