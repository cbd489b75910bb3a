package period

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

const table = "booking_periods"

var columns = []string{
	"p.id",
	"p.season_id",
	"p.start_date",
	"p.end_date",
	"p.created_at",
	"p.updated_at",
}

// Repository репозиторий периодов сезонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый период.
// Проверка пересечений выполняется на уровне use case внутри транзакции.
func (r *Repository) Create(ctx context.Context, period *domain.Period) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("season_id", "start_date", "end_date").
		Values(period.SeasonID, period.Start, period.End).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&period.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return period, nil
}

// GetByID получает период по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table + " p").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	period, err := scanPeriod(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan period: %w", ErrScanRow, err)
	}

	return period, nil
}

// GetBySeasonID получает периоды сезона, отсортированные по началу
func (r *Repository) GetBySeasonID(ctx context.Context, seasonID int64) ([]*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table + " p").
		Where(squirrel.Eq{"p.season_id": seasonID}).
		OrderBy("p.start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeasonID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeasonID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPeriods(rows)
}

// GetByHousingID получает периоды всех сезонов жилья
func (r *Repository) GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table + " p").
		Join("booking_seasons s ON s.id = p.season_id").
		Where(squirrel.Eq{"s.housing_id": housingID}).
		OrderBy("p.start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHousingID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHousingID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPeriods(rows)
}

// Update переносит период на новые границы
func (r *Repository) Update(ctx context.Context, id int64, start, end types.YearPeriod) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("start_date", start).
		Set("end_date", end).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, season_id, start_date, end_date, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	period, err := scanPeriod(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return period, nil
}

// Delete удаляет период
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPeriod(row rowScanner) (*domain.Period, error) {
	var period domain.Period
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&period.ID,
		&period.SeasonID,
		&period.Start,
		&period.End,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return &period, nil
}

// scanPeriods сканирует результаты запроса в слайс периодов
func scanPeriods(rows *sql.Rows) ([]*domain.Period, error) {
	periods := make([]*domain.Period, 0)

	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPeriods - scan row: %w", ErrScanRow, err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPeriods - rows error: %w", ErrScanRow, err)
	}

	return periods, nil
}
