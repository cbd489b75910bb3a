package add_period

import (
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// Request модель запроса на добавление периода в сезон
type Request struct {
	SeasonID int64            // ID сезона
	Start    types.YearPeriod // Начало периода (день/месяц)
	End      types.YearPeriod // Конец периода включительно
}

// Response модель ответа с созданным периодом
type Response struct {
	ID        int64            // ID периода
	SeasonID  int64            // ID сезона
	HousingID int64            // ID жилья сезона
	Name      string           // Производное имя "{start} - {end}"
	Start     types.YearPeriod // Начало периода
	End       types.YearPeriod // Конец периода
	CreatedAt time.Time        // Время создания
	UpdatedAt time.Time        // Время обновления
}
