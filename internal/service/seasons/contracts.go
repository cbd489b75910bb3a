package seasons

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// SeasonRepository интерфейс репозитория сезонов
type SeasonRepository interface {
	Create(ctx context.Context, season *domain.Season) (*domain.Season, error)
	GetByID(ctx context.Context, id int64) (*domain.Season, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Season, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Season, error)
	SetBasePrice(ctx context.Context, id int64, price decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetBySeasonID(ctx context.Context, seasonID int64) ([]*domain.Period, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error)
}

// HousingRepository интерфейс репозитория жилья
type HousingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Housing, error)
}

// TxManager интерфейс для управления транзакциями
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
