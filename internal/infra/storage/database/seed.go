package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// Fixture справочные данные для пустой БД
type Fixture struct {
	WorkingHours []struct {
		Day   string `yaml:"day"`
		Open  string `yaml:"open"`
		Close string `yaml:"close"`
	} `yaml:"working_hours"`
	Prices []struct {
		Type      string  `yaml:"type"`
		FirstHour float64 `yaml:"first_hour"`
		NextHours float64 `yaml:"next_hours"`
		DayMax    float64 `yaml:"day_max"`
	} `yaml:"prices"`
	Availability struct {
		Spaces      int `yaml:"spaces"`
		Days        int `yaml:"days"`
		HoursPerDay int `yaml:"hours_per_day"`
	} `yaml:"availability"`
}

// DefaultFixture разбирает встроенный fixture.yaml
func DefaultFixture() (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(fixtureYAML, &f); err != nil {
		return nil, fmt.Errorf("%w: parse fixture: %v", ErrSeed, err)
	}
	return &f, nil
}

// Seed заливает справочные данные, если таблица working_hours пуста.
// Сетка доступности строится от today на fixture.Availability.Days дней.
func Seed(ctx context.Context, db *sql.DB, driver string, fixture *Fixture, today time.Time) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM working_hours").Scan(&count); err != nil {
		return false, fmt.Errorf("%w: count working_hours: %v", ErrSeed, err)
	}
	if count > 0 {
		return false, nil
	}

	builder := sqlbuilder.New(driver)
	wrapped := dbmetrics.Wrap(db)
	tm := txmanager.NewTransactionManager(wrapped)

	err := tm.Do(ctx, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, wrapped)

		hours := builder.Insert("working_hours").Columns("day", "open_time", "close_time")
		for _, h := range fixture.WorkingHours {
			hours = hours.Values(h.Day, h.Open, h.Close)
		}
		if len(fixture.WorkingHours) > 0 {
			if err := execInsert(txCtx, executor, hours.ToSql); err != nil {
				return fmt.Errorf("working_hours: %v", err)
			}
		}

		prices := builder.Insert("prices").Columns("space_type", "first_hour", "next_hours", "day_max")
		for _, p := range fixture.Prices {
			prices = prices.Values(p.Type, p.FirstHour, p.NextHours, p.DayMax)
		}
		if len(fixture.Prices) > 0 {
			if err := execInsert(txCtx, executor, prices.ToSql); err != nil {
				return fmt.Errorf("prices: %v", err)
			}
		}

		// Одна вставка на (место, день), чтобы не упереться в лимит параметров
		for space := 1; space <= fixture.Availability.Spaces; space++ {
			for d := 0; d < fixture.Availability.Days && fixture.Availability.HoursPerDay > 0; d++ {
				slotDate := today.AddDate(0, 0, d).Format(domain.DateFormat)
				slots := builder.Insert("availability").Columns("space_id", "slot_date", "hour_slot", "available")
				for hour := 0; hour < fixture.Availability.HoursPerDay; hour++ {
					slots = slots.Values(space, slotDate, hour, 1)
				}
				if err := execInsert(txCtx, executor, slots.ToSql); err != nil {
					return fmt.Errorf("availability: %v", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSeed, err)
	}

	return true, nil
}

func execInsert(ctx context.Context, executor dbmetrics.DBExecutor, toSQL func() (string, []interface{}, error)) error {
	query, args, err := toSQL()
	if err != nil {
		return err
	}
	_, err = executor.ExecContext(ctx, query, args...)
	return err
}
