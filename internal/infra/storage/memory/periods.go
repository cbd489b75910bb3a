package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/period"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/season"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// PeriodRepository периоды в памяти
type PeriodRepository struct {
	store *Store
}

// Create создает период. Сезон должен существовать.
func (r *PeriodRepository) Create(ctx context.Context, p *domain.Period) (*domain.Period, error) {
	var created domain.Period
	err := r.store.write(ctx, func(st *state) error {
		if _, ok := st.seasons[p.SeasonID]; !ok {
			return season.ErrSeasonNotFound
		}

		st.lastPeriodID++
		now := r.store.now()

		stored := *p
		stored.ID = st.lastPeriodID
		stored.CreatedAt = now
		stored.UpdatedAt = now

		st.periods[stored.ID] = &stored
		created = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID получает период по ID
func (r *PeriodRepository) GetByID(ctx context.Context, id int64) (*domain.Period, error) {
	var out *domain.Period
	err := r.store.read(ctx, func(st *state) error {
		p, ok := st.periods[id]
		if !ok {
			return period.ErrPeriodNotFound
		}
		c := *p
		out = &c
		return nil
	})
	return out, err
}

// GetBySeasonID получает периоды сезона
func (r *PeriodRepository) GetBySeasonID(ctx context.Context, seasonID int64) ([]*domain.Period, error) {
	return r.collect(ctx, func(st *state, p *domain.Period) bool {
		return p.SeasonID == seasonID
	})
}

// GetByHousingID получает периоды всех сезонов жилья
func (r *PeriodRepository) GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Period, error) {
	return r.collect(ctx, func(st *state, p *domain.Period) bool {
		s, ok := st.seasons[p.SeasonID]
		return ok && s.HousingID == housingID
	})
}

// Update переносит период на новые границы
func (r *PeriodRepository) Update(ctx context.Context, id int64, start, end types.YearPeriod) (*domain.Period, error) {
	var out *domain.Period
	err := r.store.write(ctx, func(st *state) error {
		p, ok := st.periods[id]
		if !ok {
			return period.ErrPeriodNotFound
		}
		updated := *p
		updated.Start = start
		updated.End = end
		updated.UpdatedAt = r.store.now()
		st.periods[id] = &updated

		c := updated
		out = &c
		return nil
	})
	return out, err
}

// Delete удаляет период
func (r *PeriodRepository) Delete(ctx context.Context, id int64) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.periods[id]; !ok {
			return period.ErrPeriodNotFound
		}
		delete(st.periods, id)
		return nil
	})
}

// collect отбирает периоды по условию, сортируя по началу (как ORDER BY start_date)
func (r *PeriodRepository) collect(ctx context.Context, match func(st *state, p *domain.Period) bool) ([]*domain.Period, error) {
	out := make([]*domain.Period, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, p := range st.periods {
			if match(st, p) {
				c := *p
				out = append(out, &c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Start.Compare(out[j].Start); cmp != 0 {
			return cmp < 0
		}
		return out[i].ID < out[j].ID
	})
	return out, err
}
