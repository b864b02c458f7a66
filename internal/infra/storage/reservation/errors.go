package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда заявка не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrNotPending возвращается, когда заявка уже не в статусе pending (или её нет)
	ErrNotPending = errors.New("reservation.repository: reservation is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
