package update_period

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// SeasonRepository интерфейс репозитория сезонов
type SeasonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Season, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Period, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error)
	Update(ctx context.Context, id int64, start, end types.YearPeriod) (*domain.Period, error)
}

// HousingRepository интерфейс репозитория жилья
type HousingRepository interface {
	LockForUpdate(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета отклоненных записей
type MetricsRecorder interface {
	RecordPeriodRejection(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
