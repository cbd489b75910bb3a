package seasons

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	housingRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	seasonRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/season"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

// Service сервис для работы с сезонами бронирования
type Service struct {
	seasonRepo  SeasonRepository
	periodRepo  PeriodRepository
	housingRepo HousingRepository
	txManager   TxManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса сезонов
func NewService(
	seasonRepo SeasonRepository,
	periodRepo PeriodRepository,
	housingRepo HousingRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		seasonRepo:  seasonRepo,
		periodRepo:  periodRepo,
		housingRepo: housingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает сезон жилья без периодов
func (s *Service) Create(ctx context.Context, housingID int64, req *models.CreateSeasonRequest) (*models.SeasonResponse, error) {
	s.logger.Info("Create: creating season for housing=%d", housingID)

	// 1. Валидируем входные данные
	name, err := validateName(req.Name)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if req.BasePrice != nil {
		if err := validateBasePrice(*req.BasePrice); err != nil {
			s.logger.Warn("Create: validation failed: %v", err)
			return nil, err
		}
	}

	// 2. Проверяем существование жилья
	if err := s.ensureHousing(ctx, "Create", housingID); err != nil {
		return nil, err
	}

	// 3. Создаем сезон
	created, err := s.seasonRepo.Create(ctx, &domain.Season{
		HousingID: housingID,
		Name:      name,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		if errors.Is(err, housingRepo.ErrHousingNotFound) {
			return nil, ErrHousingNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created season id=%d for housing=%d", created.ID, housingID)
	return models.FromDomainSeason(created), nil
}

// GetByID получает сезон с его периодами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SeasonResponse, error) {
	s.logger.Info("GetByID: fetching season id=%d", id)

	var season *domain.Season
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		season, err = s.seasonRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		season.Periods, err = s.periodRepo.GetBySeasonID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, seasonRepo.ErrSeasonNotFound) {
			s.logger.Warn("GetByID: season id=%d not found", id)
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("GetByID: repository error for season id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSeason(season), nil
}

// ListByHousing получает все сезоны жилья вместе с периодами
func (s *Service) ListByHousing(ctx context.Context, housingID int64) (*models.SeasonListResponse, error) {
	s.logger.Info("ListByHousing: fetching seasons for housing=%d", housingID)

	if err := s.ensureHousing(ctx, "ListByHousing", housingID); err != nil {
		return nil, err
	}

	var seasons []*domain.Season
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		seasons, err = s.seasonRepo.GetByHousingID(txCtx, housingID)
		if err != nil {
			return err
		}
		periods, err := s.periodRepo.GetByHousingID(txCtx, housingID)
		if err != nil {
			return err
		}
		domain.AttachPeriods(seasons, periods)
		return nil
	})
	if err != nil {
		s.logger.Error("ListByHousing: repository error for housing=%d: %v", housingID, err)
		return nil, fmt.Errorf("%w: ListByHousing - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByHousing: fetched %d seasons for housing=%d", len(seasons), housingID)
	return models.FromDomainSeasonList(seasons), nil
}

// UpdateName переименовывает сезон
func (s *Service) UpdateName(ctx context.Context, id int64, req *models.UpdateSeasonRequest) (*models.SeasonResponse, error) {
	s.logger.Info("UpdateName: renaming season id=%d", id)

	name, err := validateName(req.Name)
	if err != nil {
		s.logger.Warn("UpdateName: validation failed for season id=%d: %v", id, err)
		return nil, err
	}

	if _, err := s.seasonRepo.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, seasonRepo.ErrSeasonNotFound) {
			s.logger.Warn("UpdateName: season id=%d not found", id)
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("UpdateName: repository error for season id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateName - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateName: successfully renamed season id=%d", id)
	return s.GetByID(ctx, id)
}

// SetBasePrice задает цену за ночь. Неотрицательная, не более 2 знаков после запятой, NUMERIC(7,2).
func (s *Service) SetBasePrice(ctx context.Context, id int64, req *models.SetBasePriceRequest) (*models.SeasonResponse, error) {
	s.logger.Info("SetBasePrice: setting base price=%s for season id=%d", req.BasePrice, id)

	if err := validateBasePrice(req.BasePrice); err != nil {
		s.logger.Warn("SetBasePrice: validation failed for season id=%d: %v", id, err)
		return nil, err
	}

	if err := s.seasonRepo.SetBasePrice(ctx, id, req.BasePrice); err != nil {
		if errors.Is(err, seasonRepo.ErrSeasonNotFound) {
			s.logger.Warn("SetBasePrice: season id=%d not found", id)
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("SetBasePrice: repository error for season id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetBasePrice - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetBasePrice: successfully set base price for season id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет сезон вместе с его периодами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting season id=%d", id)

	if err := s.seasonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, seasonRepo.ErrSeasonNotFound) {
			s.logger.Warn("Delete: season id=%d not found", id)
			return ErrSeasonNotFound
		}
		s.logger.Error("Delete: repository error for season id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted season id=%d", id)
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
