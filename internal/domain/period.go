package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/interval"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// Period диапазон дней года [Start, End] внутри сезона.
// Start <= End: диапазон через Новый год хранится как два периода.
type Period struct {
	ID        int64
	SeasonID  int64
	Start     types.YearPeriod
	End       types.YearPeriod
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name производное имя периода, не хранится
func (p *Period) Name() string {
	return fmt.Sprintf("%s - %s", p.Start, p.End)
}

// Range возвращает период как замкнутый интервал
func (p *Period) Range() interval.Range[types.YearPeriod] {
	return interval.New(p.Start, p.End)
}

// OverlapsAny проверяет, пересекается ли [start, end] хотя бы с одним периодом.
// Период с excludeID не учитывается (при обновлении период не конфликтует сам с собой).
func OverlapsAny(periods []*Period, start, end types.YearPeriod, excludeID int64) bool {
	ranges := make([]interval.Range[types.YearPeriod], 0, len(periods))
	for _, p := range periods {
		if excludeID != 0 && p.ID == excludeID {
			continue
		}
		ranges = append(ranges, p.Range())
	}
	return interval.IntersectsAny(interval.New(start, end), ranges)
}
