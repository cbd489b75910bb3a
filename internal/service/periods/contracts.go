package periods

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Period, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error)
	Delete(ctx context.Context, id int64) error
}

// HousingRepository интерфейс репозитория жилья
type HousingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Housing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
