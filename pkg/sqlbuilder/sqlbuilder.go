package sqlbuilder

import "github.com/Masterminds/squirrel"

// Поддерживаемые драйверы БД
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Builder squirrel StatementBuilder с плейсхолдерами под конкретный драйвер
type Builder struct {
	sb squirrel.StatementBuilderType
}

// New возвращает билдер: $1.. для postgres, ? для sqlite
func New(driver string) Builder {
	format := squirrel.PlaceholderFormat(squirrel.Question)
	if driver == DriverPostgres {
		format = squirrel.Dollar
	}
	return Builder{sb: squirrel.StatementBuilder.PlaceholderFormat(format)}
}

func (b Builder) Select(columns ...string) squirrel.SelectBuilder {
	return b.sb.Select(columns...)
}

func (b Builder) Insert(table string) squirrel.InsertBuilder {
	return b.sb.Insert(table)
}

func (b Builder) Update(table string) squirrel.UpdateBuilder {
	return b.sb.Update(table)
}
