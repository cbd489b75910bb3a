package season

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/psqlbuilder"
)

const table = "booking_seasons"

var columns = []string{
	"id",
	"housing_id",
	"name",
	"base_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий сезонов бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сезонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый сезон
func (r *Repository) Create(ctx context.Context, season *domain.Season) (*domain.Season, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("housing_id", "name", "base_price").
		Values(season.HousingID, season.Name, nullDecimal(season.BasePrice)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&season.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	season.CreatedAt = createdAt.Time
	season.UpdatedAt = updatedAt.Time

	return season, nil
}

// GetByID получает сезон по ID (без периодов)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Season, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	season, err := scanSeason(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSeasonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan season: %w", ErrScanRow, err)
	}

	return season, nil
}

// GetByHousingID получает все сезоны жилья (без периодов)
func (r *Repository) GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Season, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"housing_id": housingID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHousingID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHousingID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	seasons := make([]*domain.Season, 0)
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHousingID - scan row: %w", ErrScanRow, err)
		}
		seasons = append(seasons, season)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHousingID - rows error: %w", ErrScanRow, err)
	}

	return seasons, nil
}

// UpdateName переименовывает сезон
func (r *Repository) UpdateName(ctx context.Context, id int64, name string) (*domain.Season, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateName - build update query: %w", ErrBuildQuery, err)
	}

	season, err := scanSeason(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSeasonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateName - execute update: %w", ErrExecQuery, err)
	}

	return season, nil
}

// SetBasePrice задает цену за ночь
func (r *Repository) SetBasePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("base_price", price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBasePrice - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetBasePrice", query, args)
}

// Delete удаляет сезон. Периоды удаляются каскадно (ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSeasonNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSeason(row rowScanner) (*domain.Season, error) {
	var season domain.Season
	var price decimal.NullDecimal
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&season.ID,
		&season.HousingID,
		&season.Name,
		&price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		season.BasePrice = &price.Decimal
	}
	season.CreatedAt = createdAt.Time
	season.UpdatedAt = updatedAt.Time

	return &season, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
