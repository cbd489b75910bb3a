// Package memory хранилище сезонов и периодов в памяти процесса.
//
// Реализует те же контракты, что и репозитории PostgreSQL, и возвращает их
// ошибки (housing.ErrHousingNotFound, season.ErrSeasonNotFound, ...).
// Транзакция работает с копией состояния под блокировкой записи и подменяет
// живое состояние только при успешном завершении.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// ErrReadOnlyTx возвращается при попытке записи внутри DoReadOnly
var ErrReadOnlyTx = errors.New("memory.store: write inside read-only transaction")

type state struct {
	housings   map[int64]*domain.Housing
	seasons    map[int64]*domain.Season
	periods    map[int64]*domain.Period
	categories map[int64]*domain.PriceCategory

	lastHousingID  int64
	lastSeasonID   int64
	lastPeriodID   int64
	lastCategoryID int64
}

func newState() *state {
	return &state{
		housings:   make(map[int64]*domain.Housing),
		seasons:    make(map[int64]*domain.Season),
		periods:    make(map[int64]*domain.Period),
		categories: make(map[int64]*domain.PriceCategory),
	}
}

// clone копирует состояние. Сущности неизменяемы после записи (каждая запись
// кладет новый указатель), поэтому достаточно копии карт.
func (s *state) clone() *state {
	c := &state{
		housings:       make(map[int64]*domain.Housing, len(s.housings)),
		seasons:        make(map[int64]*domain.Season, len(s.seasons)),
		periods:        make(map[int64]*domain.Period, len(s.periods)),
		categories:     make(map[int64]*domain.PriceCategory, len(s.categories)),
		lastHousingID:  s.lastHousingID,
		lastSeasonID:   s.lastSeasonID,
		lastPeriodID:   s.lastPeriodID,
		lastCategoryID: s.lastCategoryID,
	}
	for k, v := range s.housings {
		c.housings[k] = v
	}
	for k, v := range s.seasons {
		c.seasons[k] = v
	}
	for k, v := range s.periods {
		c.periods[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	return c
}

type txKey struct{}

type txState struct {
	st       *state
	readOnly bool
}

// Store хранилище в памяти
type Store struct {
	mu  sync.RWMutex
	st  *state
	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		st:  newState(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Housings репозиторий жилья
func (s *Store) Housings() *HousingRepository {
	return &HousingRepository{store: s}
}

// Seasons репозиторий сезонов
func (s *Store) Seasons() *SeasonRepository {
	return &SeasonRepository{store: s}
}

// Periods репозиторий периодов
func (s *Store) Periods() *PeriodRepository {
	return &PeriodRepository{store: s}
}

// PriceCategories репозиторий категорий цен
func (s *Store) PriceCategories() *PriceCategoryRepository {
	return &PriceCategoryRepository{store: s}
}

// Do выполняет fn атомарно: либо все изменения fn видны, либо ни одного
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(context.WithValue(ctx, txKey{}, &txState{st: work})); err != nil {
		return err
	}
	s.st = work

	return nil
}

// DoSerializable то же, что Do: записи в памяти всегда сериализованы
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// DoReadOnly выполняет fn под блокировкой чтения на едином снимке
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(context.WithValue(ctx, txKey{}, &txState{st: s.st, readOnly: true}))
}

func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if tx, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(tx.st)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.st)
}

// write вне транзакции тоже работает с копией: ошибка на середине fn не оставляет частичных изменений
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if tx, ok := ctx.Value(txKey{}).(*txState); ok {
		if tx.readOnly {
			return ErrReadOnlyTx
		}
		return fn(tx.st)
	}

	return s.Do(ctx, func(ctx context.Context) error {
		return fn(ctx.Value(txKey{}).(*txState).st)
	})
}
