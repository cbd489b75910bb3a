package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/ptr"
)

// Season набор периодов года с однородным тарифом (например, "низкий сезон")
type Season struct {
	ID        int64
	HousingID int64
	Name      string
	// BasePrice цена за ночь; nil пока цена не задана
	BasePrice *decimal.Decimal
	Periods   []*Period
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Price возвращает цену за ночь, ноль если цена не задана
func (s *Season) Price() decimal.Decimal {
	return ptr.Deref(s.BasePrice, decimal.Zero)
}

// HasPrice возвращает true, если цена за ночь задана
func (s *Season) HasPrice() bool {
	return s.BasePrice != nil
}

// AttachPeriods раскладывает периоды по сезонам
func AttachPeriods(seasons []*Season, periods []*Period) {
	byID := make(map[int64]*Season, len(seasons))
	for _, s := range seasons {
		s.Periods = make([]*Period, 0)
		byID[s.ID] = s
	}
	for _, p := range periods {
		if s, ok := byID[p.SeasonID]; ok {
			s.Periods = append(s.Periods, p)
		}
	}
}
