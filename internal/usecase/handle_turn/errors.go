package handle_turn

import "errors"

var (
	// ErrEmptyMessage пустое сообщение, обрабатывать нечего
	ErrEmptyMessage = errors.New("handle_turn: empty message")
)
