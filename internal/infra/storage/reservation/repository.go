package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

const table = "reservation_requests"

var columns = []string{
	"id",
	"name",
	"surname",
	"car_number",
	"period_start",
	"period_end",
	"status",
	"admin_comment",
	"created_at",
	"decided_at",
}

// Repository репозиторий заявок на бронирование
type Repository struct {
	db      DBExecutor
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor, builder sqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// Create сохраняет новую заявку. ID выдаёт БД (автоинкремент), поэтому
// идентификаторы строго возрастают в порядке вставки.
func (r *Repository) Create(ctx context.Context, req *domain.ReservationRequest) (*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Insert(table).
		Columns(
			"name",
			"surname",
			"car_number",
			"period_start",
			"period_end",
			"status",
			"admin_comment",
			"created_at",
		).
		Values(
			req.Name,
			req.Surname,
			req.CarNumber,
			req.PeriodStart,
			req.PeriodEnd,
			req.Status,
			req.AdminComment,
			req.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return req, nil
}

// GetByStatus получает заявки в статусе, от старых к новым (created_at, затем id)
func (r *Repository) GetByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ReservationRequest, 0)
	for rows.Next() {
		req, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByStatus - scan row: %v", ErrScanRow, err)
		}
		result = append(result, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateDecision переводит заявку из pending в терминальный статус.
// Условие status = 'pending' в WHERE делает переход однократным даже при гонке:
// если строка не обновилась, возвращается ErrNotPending.
func (r *Repository) UpdateDecision(
	ctx context.Context,
	id int64,
	status domain.ReservationStatus,
	comment string,
	decidedAt time.Time,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Update(table).
		Set("status", status).
		Set("admin_comment", comment).
		Set("decided_at", decidedAt).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.ReservationRequest, error) {
	var (
		req                  domain.ReservationRequest
		createdAt, decidedAt sql.NullTime
	)

	err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Surname,
		&req.CarNumber,
		&req.PeriodStart,
		&req.PeriodEnd,
		&req.Status,
		&req.AdminComment,
		&createdAt,
		&decidedAt,
	)
	if err != nil {
		return nil, err
	}

	req.CreatedAt = createdAt.Time
	if decidedAt.Valid {
		t := decidedAt.Time
		req.DecidedAt = &t
	}

	return &req, nil
}
