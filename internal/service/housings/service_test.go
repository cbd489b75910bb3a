package housings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings/models"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
)

type failingRepo struct{}

func (failingRepo) Create(context.Context, *domain.Housing) (*domain.Housing, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetByID(context.Context, int64) (*domain.Housing, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) List(context.Context) ([]*domain.Housing, error) {
	return nil, errors.New("connection refused")
}

func TestService_CreateAndGet(t *testing.T) {
	svc := NewService(memory.NewStore().Housings(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateHousingRequest{Name: "  Chalet  "})
	require.NoError(t, err)
	assert.Equal(t, "Chalet", created.Name)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Housings, 1)
}

func TestService_Create_InvalidName(t *testing.T) {
	svc := NewService(memory.NewStore().Housings(), logger.NewNop())

	for _, name := range []string{"", "   ", strings.Repeat("x", domain.MaxHousingNameLength+1)} {
		_, err := svc.Create(context.Background(), &models.CreateHousingRequest{Name: name})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(memory.NewStore().Housings(), logger.NewNop())

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrHousingNotFound)
}

func TestService_RepositoryFailure(t *testing.T) {
	svc := NewService(failingRepo{}, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateHousingRequest{Name: "Chalet"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}
