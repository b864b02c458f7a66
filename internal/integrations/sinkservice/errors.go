package sinkservice

import "errors"

var (
	// ErrUnauthorized sink отклонил ключ
	ErrUnauthorized = errors.New("sinkservice client: invalid or missing api key")

	// ErrUnavailable sink недоступен (сеть, таймаут)
	ErrUnavailable = errors.New("sinkservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sinkservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("sinkservice client: invalid response")
)
