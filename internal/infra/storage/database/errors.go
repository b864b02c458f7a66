package database

import "errors"

var (
	// ErrUnsupportedDriver драйвер не sqlite и не postgres
	ErrUnsupportedDriver = errors.New("database: unsupported driver")

	// ErrOpen не удалось открыть или проверить соединение
	ErrOpen = errors.New("database: failed to open")

	// ErrMigrate ошибка создания схемы
	ErrMigrate = errors.New("database: failed to apply schema")

	// ErrSeed ошибка заполнения справочных данных
	ErrSeed = errors.New("database: failed to seed reference data")
)
