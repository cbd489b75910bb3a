package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/config"
	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	housingRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	periodRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/period"
	priceCategoryRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/pricecategory"
	seasonRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/season"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/metrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/txmanager"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// Полные наборы методов хранилища, которые реализуют оба драйвера

type housingStore interface {
	Create(ctx context.Context, housing *domain.Housing) (*domain.Housing, error)
	GetByID(ctx context.Context, id int64) (*domain.Housing, error)
	List(ctx context.Context) ([]*domain.Housing, error)
	LockForUpdate(ctx context.Context, id int64) error
}

type seasonStore interface {
	Create(ctx context.Context, season *domain.Season) (*domain.Season, error)
	GetByID(ctx context.Context, id int64) (*domain.Season, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Season, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Season, error)
	SetBasePrice(ctx context.Context, id int64, price decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

type periodStore interface {
	Create(ctx context.Context, period *domain.Period) (*domain.Period, error)
	GetByID(ctx context.Context, id int64) (*domain.Period, error)
	GetBySeasonID(ctx context.Context, seasonID int64) ([]*domain.Period, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error)
	Update(ctx context.Context, id int64, start, end types.YearPeriod) (*domain.Period, error)
	Delete(ctx context.Context, id int64) error
}

type priceCategoryStore interface {
	Create(ctx context.Context, category *domain.PriceCategory) (*domain.PriceCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.PriceCategory, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.PriceCategory, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.PriceCategory, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage репозитории и менеджер транзакций выбранного драйвера
type storage struct {
	housings        housingStore
	seasons         seasonStore
	periods         periodStore
	priceCategories priceCategoryStore
	txManager       txManager

	close func()
}

// openStorage открывает хранилище по storage.driver
func openStorage(cfg *config.Config, metricsCollector *metrics.Metrics, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		log.Info("Using in-memory storage, data is lost on restart")
		return &storage{
			housings:        store.Housings(),
			seasons:         store.Seasons(),
			periods:         store.Periods(),
			priceCategories: store.PriceCategories(),
			txManager:       store,
			close:           func() {},
		}, nil

	case config.StorageDriverPostgres:
		return openPostgres(cfg, metricsCollector, log)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(cfg *config.Config, metricsCollector *metrics.Metrics, log *logger.Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	stopStatsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopStatsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	return &storage{
		housings:        housingRepo.NewRepository(wrappedDB),
		seasons:         seasonRepo.NewRepository(wrappedDB),
		periods:         periodRepo.NewRepository(wrappedDB),
		priceCategories: priceCategoryRepo.NewRepository(wrappedDB),
		txManager:       txmanager.NewTransactionManager(wrappedDB),
		close: func() {
			close(stopStatsCh)
			if err := db.Close(); err != nil {
				log.Error("Failed to close database: %v", err)
			}
		},
	}, nil
}
