package housings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	housingRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings/models"
)

// Service сервис для работы с жильем
type Service struct {
	housingRepo HousingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса жилья
func NewService(housingRepo HousingRepository, logger Logger) *Service {
	return &Service{
		housingRepo: housingRepo,
		logger:      logger,
	}
}

// Create создает жилье
func (s *Service) Create(ctx context.Context, req *models.CreateHousingRequest) (*models.HousingResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("Create: creating housing name=%q", name)

	if name == "" || utf8.RuneCountInString(name) > domain.MaxHousingNameLength {
		s.logger.Warn("Create: invalid housing name length=%d", utf8.RuneCountInString(name))
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxHousingNameLength)
	}

	created, err := s.housingRepo.Create(ctx, &domain.Housing{Name: name})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created housing id=%d", created.ID)
	return models.FromDomainHousing(created), nil
}

// GetByID получает жилье по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HousingResponse, error) {
	s.logger.Info("GetByID: fetching housing id=%d", id)

	h, err := s.housingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, housingRepo.ErrHousingNotFound) {
			s.logger.Warn("GetByID: housing id=%d not found", id)
			return nil, ErrHousingNotFound
		}
		s.logger.Error("GetByID: repository error for housing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHousing(h), nil
}

// List получает все жилье
func (s *Service) List(ctx context.Context) (*models.HousingListResponse, error) {
	housings, err := s.housingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d housings", len(housings))
	return models.FromDomainHousingList(housings), nil
}
