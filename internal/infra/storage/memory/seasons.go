package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/season"
)

// SeasonRepository сезоны в памяти
type SeasonRepository struct {
	store *Store
}

// Create создает сезон. Жилье должно существовать (аналог внешнего ключа).
func (r *SeasonRepository) Create(ctx context.Context, s *domain.Season) (*domain.Season, error) {
	var created *domain.Season
	err := r.store.write(ctx, func(st *state) error {
		if _, ok := st.housings[s.HousingID]; !ok {
			return housing.ErrHousingNotFound
		}

		st.lastSeasonID++
		now := r.store.now()

		stored := copySeason(s)
		stored.ID = st.lastSeasonID
		stored.CreatedAt = now
		stored.UpdatedAt = now

		st.seasons[stored.ID] = stored
		created = copySeason(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID получает сезон по ID (без периодов)
func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (*domain.Season, error) {
	var out *domain.Season
	err := r.store.read(ctx, func(st *state) error {
		s, ok := st.seasons[id]
		if !ok {
			return season.ErrSeasonNotFound
		}
		out = copySeason(s)
		return nil
	})
	return out, err
}

// GetByHousingID получает сезоны жилья по возрастанию ID
func (r *SeasonRepository) GetByHousingID(ctx context.Context, housingID int64) ([]*domain.Season, error) {
	out := make([]*domain.Season, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, s := range st.seasons {
			if s.HousingID == housingID {
				out = append(out, copySeason(s))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// UpdateName переименовывает сезон
func (r *SeasonRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.Season, error) {
	var out *domain.Season
	err := r.store.write(ctx, func(st *state) error {
		s, ok := st.seasons[id]
		if !ok {
			return season.ErrSeasonNotFound
		}
		updated := copySeason(s)
		updated.Name = name
		updated.UpdatedAt = r.store.now()
		st.seasons[id] = updated

		out = copySeason(updated)
		return nil
	})
	return out, err
}

// SetBasePrice задает цену за ночь
func (r *SeasonRepository) SetBasePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	return r.store.write(ctx, func(st *state) error {
		s, ok := st.seasons[id]
		if !ok {
			return season.ErrSeasonNotFound
		}
		updated := copySeason(s)
		updated.BasePrice = &price
		updated.UpdatedAt = r.store.now()
		st.seasons[id] = updated
		return nil
	})
}

// Delete удаляет сезон вместе с его периодами
func (r *SeasonRepository) Delete(ctx context.Context, id int64) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.seasons[id]; !ok {
			return season.ErrSeasonNotFound
		}
		delete(st.seasons, id)
		for pid, p := range st.periods {
			if p.SeasonID == id {
				delete(st.periods, pid)
			}
		}
		return nil
	})
}

func copySeason(s *domain.Season) *domain.Season {
	c := *s
	c.Periods = nil
	if s.BasePrice != nil {
		price := *s.BasePrice
		c.BasePrice = &price
	}
	return &c
}
