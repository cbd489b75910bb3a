package update_period

import (
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// Request модель запроса на перенос периода
type Request struct {
	PeriodID int64            // ID периода
	Start    types.YearPeriod // Новое начало
	End      types.YearPeriod // Новый конец включительно
}

// Response модель ответа с обновленным периодом
type Response struct {
	ID        int64
	SeasonID  int64
	HousingID int64
	Name      string
	Start     types.YearPeriod
	End       types.YearPeriod
	CreatedAt time.Time
	UpdatedAt time.Time
}
