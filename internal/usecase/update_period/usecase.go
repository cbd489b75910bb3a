package update_period

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	periodRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/period"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/metrics"
)

// UseCase use case для переноса границ периода
type UseCase struct {
	seasonRepo  SeasonRepository
	periodRepo  PeriodRepository
	housingRepo HousingRepository
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	seasonRepo SeasonRepository,
	periodRepo PeriodRepository,
	housingRepo HousingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		seasonRepo:  seasonRepo,
		periodRepo:  periodRepo,
		housingRepo: housingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case переноса периода.
// Сам период при проверке пересечений не учитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePeriod: period=%d, start=%s, end=%s", req.PeriodID, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		if errors.Is(err, ErrInvalidRange) {
			uc.metrics.RecordPeriodRejection(metrics.RejectionInvalidRange)
		}
		uc.logger.Warn("UpdatePeriod: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Period
	var housingID int64

	// 2. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем период и его сезон
		current, err := uc.periodRepo.GetByID(txCtx, req.PeriodID)
		if err != nil {
			if errors.Is(err, periodRepo.ErrPeriodNotFound) {
				uc.logger.Warn("UpdatePeriod: period id=%d not found", req.PeriodID)
				return ErrPeriodNotFound
			}
			uc.logger.Error("UpdatePeriod: failed to get period id=%d: %v", req.PeriodID, err)
			return fmt.Errorf("%w: failed to get period: %w", ErrInternal, err)
		}

		season, err := uc.seasonRepo.GetByID(txCtx, current.SeasonID)
		if err != nil {
			uc.logger.Error("UpdatePeriod: failed to get season id=%d: %v", current.SeasonID, err)
			return fmt.Errorf("%w: failed to get season: %w", ErrInternal, err)
		}
		housingID = season.HousingID

		// 2.2. Блокируем жилье
		if err := uc.housingRepo.LockForUpdate(txCtx, housingID); err != nil {
			uc.logger.Error("UpdatePeriod: failed to lock housing id=%d: %v", housingID, err)
			return fmt.Errorf("%w: failed to lock housing: %w", ErrInternal, err)
		}

		// 2.3. Проверяем пересечения с остальными периодами жилья
		periods, err := uc.periodRepo.GetByHousingID(txCtx, housingID)
		if err != nil {
			uc.logger.Error("UpdatePeriod: failed to get periods of housing id=%d: %v", housingID, err)
			return fmt.Errorf("%w: failed to get periods: %w", ErrInternal, err)
		}

		if domain.OverlapsAny(periods, req.Start, req.End, current.ID) {
			uc.metrics.RecordPeriodRejection(metrics.RejectionOverlap)
			uc.logger.Warn("UpdatePeriod: period %s - %s overlaps existing period of housing id=%d",
				req.Start, req.End, housingID)
			return ErrPeriodOverlap
		}

		// 2.4. Сохраняем новые границы
		updated, err := uc.periodRepo.Update(txCtx, current.ID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("UpdatePeriod: failed to update period id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update period: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrPeriodNotFound) || errors.Is(err, ErrPeriodOverlap) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("UpdatePeriod: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("UpdatePeriod: successfully updated period id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		SeasonID:  result.SeasonID,
		HousingID: housingID,
		Name:      result.Name(),
		Start:     result.Start,
		End:       result.End,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
