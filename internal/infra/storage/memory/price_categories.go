package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/pricecategory"
)

// PriceCategoryRepository категории цен в памяти
type PriceCategoryRepository struct {
	store *Store
}

// Create создает категорию
func (r *PriceCategoryRepository) Create(ctx context.Context, c *domain.PriceCategory) (*domain.PriceCategory, error) {
	var created domain.PriceCategory
	err := r.store.write(ctx, func(st *state) error {
		if _, ok := st.housings[c.HousingID]; !ok {
			return housing.ErrHousingNotFound
		}

		st.lastCategoryID++
		now := r.store.now()

		stored := *c
		stored.ID = st.lastCategoryID
		stored.CreatedAt = now
		stored.UpdatedAt = now

		st.categories[stored.ID] = &stored
		created = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID получает категорию по ID
func (r *PriceCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.PriceCategory, error) {
	var out *domain.PriceCategory
	err := r.store.read(ctx, func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return pricecategory.ErrPriceCategoryNotFound
		}
		cp := *c
		out = &cp
		return nil
	})
	return out, err
}

// GetByHousingID получает категории жилья
func (r *PriceCategoryRepository) GetByHousingID(ctx context.Context, housingID int64) ([]*domain.PriceCategory, error) {
	out := make([]*domain.PriceCategory, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, c := range st.categories {
			if c.HousingID == housingID {
				cp := *c
				out = append(out, &cp)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// UpdateName переименовывает категорию
func (r *PriceCategoryRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.PriceCategory, error) {
	var out *domain.PriceCategory
	err := r.store.write(ctx, func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return pricecategory.ErrPriceCategoryNotFound
		}
		updated := *c
		updated.Name = name
		updated.UpdatedAt = r.store.now()
		st.categories[id] = &updated

		cp := updated
		out = &cp
		return nil
	})
	return out, err
}

// Delete удаляет категорию
func (r *PriceCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.categories[id]; !ok {
			return pricecategory.ErrPriceCategoryNotFound
		}
		delete(st.categories, id)
		return nil
	})
}
