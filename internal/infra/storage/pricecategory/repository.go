package pricecategory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/psqlbuilder"
)

const table = "booking_price_categories"

// Repository репозиторий категорий цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает категорию
func (r *Repository) Create(ctx context.Context, category *domain.PriceCategory) (*domain.PriceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("housing_id", "name").
		Values(category.HousingID, category.Name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time

	return category, nil
}

// GetByID получает категорию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PriceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "housing_id", "name", "created_at", "updated_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	category, err := scanCategory(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPriceCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan category: %w", ErrScanRow, err)
	}

	return category, nil
}

// GetByHousingID получает категории жилья
func (r *Repository) GetByHousingID(ctx context.Context, housingID int64) ([]*domain.PriceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "housing_id", "name", "created_at", "updated_at").
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

	categories := make([]*domain.PriceCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHousingID - scan row: %w", ErrScanRow, err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHousingID - rows error: %w", ErrScanRow, err)
	}

	return categories, nil
}

// UpdateName переименовывает категорию
func (r *Repository) UpdateName(ctx context.Context, id int64, name string) (*domain.PriceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, housing_id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateName - build update query: %w", ErrBuildQuery, err)
	}

	category, err := scanCategory(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPriceCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateName - execute update: %w", ErrExecQuery, err)
	}

	return category, nil
}

// Delete удаляет категорию
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
		return ErrPriceCategoryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*domain.PriceCategory, error) {
	var category domain.PriceCategory
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&category.ID, &category.HousingID, &category.Name, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time

	return &category, nil
}
