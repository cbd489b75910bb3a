package housings

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// HousingRepository интерфейс репозитория жилья
type HousingRepository interface {
	Create(ctx context.Context, housing *domain.Housing) (*domain.Housing, error)
	GetByID(ctx context.Context, id int64) (*domain.Housing, error)
	List(ctx context.Context) ([]*domain.Housing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
