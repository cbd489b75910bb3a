package pricecategories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	housingRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	categoryRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/pricecategory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories/models"
)

// Service сервис категорий цен (взрослый, ребенок, ...)
type Service struct {
	categoryRepo PriceCategoryRepository
	housingRepo  HousingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса категорий цен
func NewService(categoryRepo PriceCategoryRepository, housingRepo HousingRepository, logger Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		housingRepo:  housingRepo,
		logger:       logger,
	}
}

// Create создает категорию для жилья
func (s *Service) Create(ctx context.Context, housingID int64, req *models.PriceCategoryRequest) (*models.PriceCategoryResponse, error) {
	s.logger.Info("Create: creating price category for housing=%d", housingID)

	name, err := validateName(req.Name)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.ensureHousing(ctx, "Create", housingID); err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.Create(ctx, &domain.PriceCategory{HousingID: housingID, Name: name})
	if err != nil {
		if errors.Is(err, housingRepo.ErrHousingNotFound) {
			return nil, ErrHousingNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created price category id=%d", created.ID)
	return models.FromDomainPriceCategory(created), nil
}

// GetByID получает категорию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PriceCategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainPriceCategory(category), nil
}

// ListByHousing получает категории жилья
func (s *Service) ListByHousing(ctx context.Context, housingID int64) (*models.PriceCategoryListResponse, error) {
	s.logger.Info("ListByHousing: fetching price categories for housing=%d", housingID)

	if err := s.ensureHousing(ctx, "ListByHousing", housingID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetByHousingID(ctx, housingID)
	if err != nil {
		s.logger.Error("ListByHousing: repository error for housing=%d: %v", housingID, err)
		return nil, fmt.Errorf("%w: ListByHousing - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPriceCategoryList(categories), nil
}

// UpdateName переименовывает категорию
func (s *Service) UpdateName(ctx context.Context, id int64, req *models.PriceCategoryRequest) (*models.PriceCategoryResponse, error) {
	s.logger.Info("UpdateName: renaming price category id=%d", id)

	name, err := validateName(req.Name)
	if err != nil {
		s.logger.Warn("UpdateName: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.categoryRepo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, s.mapError("UpdateName", id, err)
	}

	return models.FromDomainPriceCategory(updated), nil
}

// Delete удаляет категорию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting price category id=%d", id)

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted price category id=%d", id)
	return nil
}

func (s *Service) ensureHousing(ctx context.Context, method string, housingID int64) error {
	if _, err := s.housingRepo.GetByID(ctx, housingID); err != nil {
		if errors.Is(err, housingRepo.ErrHousingNotFound) {
			s.logger.Warn("%s: housing id=%d not found", method, housingID)
			return ErrHousingNotFound
		}
		s.logger.Error("%s: failed to get housing id=%d: %v", method, housingID, err)
		return fmt.Errorf("%w: %s - get housing: %v", ErrInternal, method, err)
	}
	return nil
}

func (s *Service) mapError(method string, id int64, err error) error {
	if errors.Is(err, categoryRepo.ErrPriceCategoryNotFound) {
		s.logger.Warn("%s: price category id=%d not found", method, id)
		return ErrPriceCategoryNotFound
	}
	s.logger.Error("%s: repository error for price category id=%d: %v", method, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxPriceCategoryNameLength {
		return "", fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxPriceCategoryNameLength)
	}
	return name, nil
}
