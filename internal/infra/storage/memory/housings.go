package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
)

// HousingRepository жилье в памяти
type HousingRepository struct {
	store *Store
}

// Create создает жилье
func (r *HousingRepository) Create(ctx context.Context, h *domain.Housing) (*domain.Housing, error) {
	var created domain.Housing
	err := r.store.write(ctx, func(st *state) error {
		st.lastHousingID++
		now := r.store.now()

		stored := *h
		stored.ID = st.lastHousingID
		stored.CreatedAt = now
		stored.UpdatedAt = now

		st.housings[stored.ID] = &stored
		created = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID получает жилье по ID
func (r *HousingRepository) GetByID(ctx context.Context, id int64) (*domain.Housing, error) {
	var out *domain.Housing
	err := r.store.read(ctx, func(st *state) error {
		h, ok := st.housings[id]
		if !ok {
			return housing.ErrHousingNotFound
		}
		c := *h
		out = &c
		return nil
	})
	return out, err
}

// List получает все жилье по возрастанию ID
func (r *HousingRepository) List(ctx context.Context) ([]*domain.Housing, error) {
	out := make([]*domain.Housing, 0)
	err := r.store.read(ctx, func(st *state) error {
		for _, h := range st.housings {
			c := *h
			out = append(out, &c)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// LockForUpdate проверяет существование жилья. Транзакция хранилища уже
// держит блокировку записи, отдельная блокировка строки не нужна.
func (r *HousingRepository) LockForUpdate(ctx context.Context, id int64) error {
	return r.store.read(ctx, func(st *state) error {
		if _, ok := st.housings[id]; !ok {
			return housing.ErrHousingNotFound
		}
		return nil
	})
}
