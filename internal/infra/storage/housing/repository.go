package housing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/psqlbuilder"
)

// Repository репозиторий жилья
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория жилья
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает жилье
func (r *Repository) Create(ctx context.Context, housing *domain.Housing) (*domain.Housing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("housings").
		Columns("name").
		Values(housing.Name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&housing.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	housing.CreatedAt = createdAt.Time
	housing.UpdatedAt = updatedAt.Time

	return housing, nil
}

// GetByID получает жилье по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Housing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("housings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var housing domain.Housing
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&housing.ID,
		&housing.Name,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrHousingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan housing: %w", ErrScanRow, err)
	}

	housing.CreatedAt = createdAt.Time
	housing.UpdatedAt = updatedAt.Time

	return &housing, nil
}

// List получает все жилье
func (r *Repository) List(ctx context.Context) ([]*domain.Housing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("housings").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	housings := make([]*domain.Housing, 0)
	for rows.Next() {
		var housing domain.Housing
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&housing.ID, &housing.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		housing.CreatedAt = createdAt.Time
		housing.UpdatedAt = updatedAt.Time
		housings = append(housings, &housing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return housings, nil
}

// LockForUpdate блокирует строку жилья до конца текущей транзакции (SELECT ... FOR UPDATE).
// Сериализует запись периодов одного жилья. Вне транзакции блокировка бессмысленна.
func (r *Repository) LockForUpdate(ctx context.Context, id int64) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockForUpdate - called outside of transaction", ErrExecQuery)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("housings").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - build select query: %w", ErrBuildQuery, err)
	}

	var lockedID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return ErrHousingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - scan: %w", ErrScanRow, err)
	}

	return nil
}
