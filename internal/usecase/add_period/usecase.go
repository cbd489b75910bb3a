package add_period

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	seasonRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/season"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/metrics"
)

// UseCase use case для добавления периода в сезон
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

// Execute выполняет use case добавления периода.
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции
// под блокировкой жилья, поэтому два параллельных пересекающихся периода не могут оба пройти.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddPeriod: season=%d, start=%s, end=%s", req.SeasonID, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		if errors.Is(err, ErrInvalidRange) {
			uc.metrics.RecordPeriodRejection(metrics.RejectionInvalidRange)
		}
		uc.logger.Warn("AddPeriod: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Period
	var housingID int64

	// 2. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем сезон
		season, err := uc.seasonRepo.GetByID(txCtx, req.SeasonID)
		if err != nil {
			if errors.Is(err, seasonRepo.ErrSeasonNotFound) {
				uc.logger.Warn("AddPeriod: season id=%d not found", req.SeasonID)
				return ErrSeasonNotFound
			}
			uc.logger.Error("AddPeriod: failed to get season id=%d: %v", req.SeasonID, err)
			return fmt.Errorf("%w: failed to get season: %w", ErrInternal, err)
		}
		housingID = season.HousingID

		// 2.2. Блокируем жилье
		if err := uc.housingRepo.LockForUpdate(txCtx, housingID); err != nil {
			uc.logger.Error("AddPeriod: failed to lock housing id=%d: %v", housingID, err)
			return fmt.Errorf("%w: failed to lock housing: %w", ErrInternal, err)
		}

		// 2.3. Получаем все периоды жилья
		periods, err := uc.periodRepo.GetByHousingID(txCtx, housingID)
		if err != nil {
			uc.logger.Error("AddPeriod: failed to get periods of housing id=%d: %v", housingID, err)
			return fmt.Errorf("%w: failed to get periods: %w", ErrInternal, err)
		}

		// 2.4. Проверяем пересечения (касание границ тоже пересечение)
		if domain.OverlapsAny(periods, req.Start, req.End, 0) {
			uc.metrics.RecordPeriodRejection(metrics.RejectionOverlap)
			uc.logger.Warn("AddPeriod: period %s - %s overlaps existing period of housing id=%d",
				req.Start, req.End, housingID)
			return ErrPeriodOverlap
		}

		// 2.5. Сохраняем период
		created, err := uc.periodRepo.Create(txCtx, &domain.Period{
			SeasonID: req.SeasonID,
			Start:    req.Start,
			End:      req.End,
		})
		if err != nil {
			uc.logger.Error("AddPeriod: failed to create period: %v", err)
			return fmt.Errorf("%w: failed to create period: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSeasonNotFound) || errors.Is(err, ErrPeriodOverlap) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("AddPeriod: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("AddPeriod: successfully created period id=%d in season=%d", result.ID, result.SeasonID)

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
