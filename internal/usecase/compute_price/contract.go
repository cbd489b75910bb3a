package compute_price

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// HousingRepository интерфейс репозитория жилья
type HousingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Housing, error)
}

// SeasonRepository интерфейс репозитория сезонов
type SeasonRepository interface {
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Season, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета расчетов стоимости
type MetricsRecorder interface {
	RecordPriceComputation(outcome string, nights int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production.
// "Сегодня" определяется в часовом поясе Location (UTC, если не задан).
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(p.Location)
}
