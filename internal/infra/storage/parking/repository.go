package parking

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

// Repository справочные данные парковки: часы работы, тарифы, доступность.
// Пустые таблицы дают пустой результат, а не ошибку.
type Repository struct {
	db      *sqlx.DB
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория справочных данных
func NewRepository(db *sqlx.DB, builder sqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

type workingHoursRow struct {
	Day       string `db:"day"`
	OpenTime  string `db:"open_time"`
	CloseTime string `db:"close_time"`
}

type priceRow struct {
	SpaceType string  `db:"space_type"`
	FirstHour float64 `db:"first_hour"`
	NextHours float64 `db:"next_hours"`
	DayMax    float64 `db:"day_max"`
}

// GetWorkingHours часы работы в порядке добавления
func (r *Repository) GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error) {
	query, args, err := r.builder.Select("day", "open_time", "close_time").
		From("working_hours").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var rows []workingHoursRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - select: %v", ErrExecQuery, err)
	}

	result := make([]domain.WorkingHours, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.WorkingHours{
			Day:   row.Day,
			Open:  row.OpenTime,
			Close: row.CloseTime,
		})
	}
	return result, nil
}

// GetPrices тарифы по типам мест
func (r *Repository) GetPrices(ctx context.Context) ([]domain.Price, error) {
	query, args, err := r.builder.Select("space_type", "first_hour", "next_hours", "day_max").
		From("prices").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPrices - build select query: %v", ErrBuildQuery, err)
	}

	var rows []priceRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: GetPrices - select: %v", ErrExecQuery, err)
	}

	result := make([]domain.Price, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.Price{
			SpaceType: row.SpaceType,
			FirstHour: row.FirstHour,
			NextHours: row.NextHours,
			DayMax:    row.DayMax,
		})
	}
	return result, nil
}

// GetAvailabilitySummary количество свободных и всех почасовых слотов на дату (YYYY-MM-DD)
func (r *Repository) GetAvailabilitySummary(ctx context.Context, date string) (*domain.AvailabilitySummary, error) {
	query, args, err := r.builder.Select(
		"COUNT(*) AS total",
		"COALESCE(SUM(CASE WHEN available = 1 THEN 1 ELSE 0 END), 0) AS available",
	).
		From("availability").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailabilitySummary - build select query: %v", ErrBuildQuery, err)
	}

	var counts struct {
		Total     int64 `db:"total"`
		Available int64 `db:"available"`
	}
	if err := r.db.GetContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("%w: GetAvailabilitySummary - select: %v", ErrExecQuery, err)
	}

	return &domain.AvailabilitySummary{
		Date:      date,
		Available: int(counts.Available),
		Total:     int(counts.Total),
	}, nil
}
