package add_period

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	periodRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/period"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/txmanager"
)

type stubTx struct{ dbmetrics.DBExecutor }

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type countingBeginner struct{ begins int }

func (b *countingBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return stubTx{}, nil
}

type stubSeasons struct{}

func (stubSeasons) GetByID(_ context.Context, id int64) (*domain.Season, error) {
	return &domain.Season{ID: id, HousingID: 1}, nil
}

type stubHousings struct{}

func (stubHousings) LockForUpdate(context.Context, int64) error { return nil }

// conflictingPeriods отдает serialization_failure на первых failures вставках,
// так же обернутый, как это делает репозиторий PostgreSQL
type conflictingPeriods struct {
	failures int
	created  int
}

func (r *conflictingPeriods) Create(_ context.Context, p *domain.Period) (*domain.Period, error) {
	if r.failures > 0 {
		r.failures--
		return nil, fmt.Errorf("%w: Create - execute insert: %w", periodRepo.ErrExecQuery,
			&pq.Error{Code: "40001", Message: "could not serialize access due to read/write dependencies among transactions"})
	}
	r.created++
	out := *p
	out.ID = 7
	return &out, nil
}

func (r *conflictingPeriods) GetByHousingID(context.Context, int64) ([]*domain.Period, error) {
	return nil, nil
}

func TestUseCase_Execute_RetriesSerializationFailure(t *testing.T) {
	db := &countingBeginner{}
	periods := &conflictingPeriods{failures: 1}
	uc := NewUseCase(stubSeasons{}, periods, stubHousings{}, txmanager.NewTransactionManager(db), &rejections{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{SeasonID: 2, Start: yp(1, 4), End: yp(31, 5)})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, 2, db.begins)
	assert.Equal(t, 1, periods.created)
}

func TestUseCase_Execute_SerializationFailureExhaustsRetries(t *testing.T) {
	db := &countingBeginner{}
	periods := &conflictingPeriods{failures: txmanager.DefaultSerializableRetries + 1}
	uc := NewUseCase(stubSeasons{}, periods, stubHousings{}, txmanager.NewTransactionManager(db), &rejections{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{SeasonID: 2, Start: yp(1, 4), End: yp(31, 5)})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, txmanager.DefaultSerializableRetries, db.begins)
	assert.Zero(t, periods.created)
}
