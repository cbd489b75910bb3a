package periods

import (
	"context"
	"errors"
	"fmt"

	housingRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	periodRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/period"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/periods/models"
)

// Service сервис чтения и удаления периодов.
// Создание и перенос периодов выполняются use case'ами add_period и update_period.
type Service struct {
	periodRepo  PeriodRepository
	housingRepo HousingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса периодов
func NewService(periodRepo PeriodRepository, housingRepo HousingRepository, logger Logger) *Service {
	return &Service{
		periodRepo:  periodRepo,
		housingRepo: housingRepo,
		logger:      logger,
	}
}

// GetByID получает период по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PeriodResponse, error) {
	s.logger.Info("GetByID: fetching period id=%d", id)

	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("GetByID: period id=%d not found", id)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("GetByID: repository error for period id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPeriod(period), nil
}

// ListByHousing получает периоды всех сезонов жилья
func (s *Service) ListByHousing(ctx context.Context, housingID int64) (*models.PeriodListResponse, error) {
	s.logger.Info("ListByHousing: fetching periods for housing=%d", housingID)

	if _, err := s.housingRepo.GetByID(ctx, housingID); err != nil {
		if errors.Is(err, housingRepo.ErrHousingNotFound) {
			s.logger.Warn("ListByHousing: housing id=%d not found", housingID)
			return nil, ErrHousingNotFound
		}
		s.logger.Error("ListByHousing: failed to get housing id=%d: %v", housingID, err)
		return nil, fmt.Errorf("%w: ListByHousing - get housing: %v", ErrInternal, err)
	}

	periods, err := s.periodRepo.GetByHousingID(ctx, housingID)
	if err != nil {
		s.logger.Error("ListByHousing: repository error for housing=%d: %v", housingID, err)
		return nil, fmt.Errorf("%w: ListByHousing - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByHousing: fetched %d periods for housing=%d", len(periods), housingID)
	return &models.PeriodListResponse{Periods: models.FromDomainPeriods(periods)}, nil
}

// Delete удаляет период
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting period id=%d", id)

	if err := s.periodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Delete: period id=%d not found", id)
			return ErrPeriodNotFound
		}
		s.logger.Error("Delete: repository error for period id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted period id=%d", id)
	return nil
}
