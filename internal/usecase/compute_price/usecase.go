package compute_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	housingRepo "github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/housing"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/metrics"
)

// UseCase use case для расчета стоимости проживания
type UseCase struct {
	housingRepo  HousingRepository
	seasonRepo   SeasonRepository
	periodRepo   PeriodRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	maxNights    int
	logger       Logger
}

// DefaultMaxStayNights максимальная длина проживания по умолчанию
const DefaultMaxStayNights = 730

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	housingRepo HousingRepository,
	seasonRepo SeasonRepository,
	periodRepo PeriodRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		housingRepo:  housingRepo,
		seasonRepo:   seasonRepo,
		periodRepo:   periodRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		maxNights:    DefaultMaxStayNights,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithMaxStayNights ограничивает длину проживания; более длинные запросы
// отклоняются с ErrInvalidDateRange до обращения к хранилищу
func (uc *UseCase) WithMaxStayNights(n int) *UseCase {
	uc.maxNights = n
	return uc
}

// Execute выполняет расчет стоимости проживания.
// Результат зависит только от состояния хранилища и входных данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputePrice: housing=%d, start=%s, end=%s",
		req.HousingID, req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))

	// 1. Валидация входных данных (без обращения к хранилищу)
	if err := validateRequest(req, uc.timeProvider.Now(), uc.maxNights); err != nil {
		uc.metrics.RecordPriceComputation(metrics.OutcomeInvalidRequest, 0)
		uc.logger.Warn("ComputePrice: validation failed: %v", err)
		return nil, err
	}

	stay := domain.NewBookingDate(req.Start, req.End)

	// 2. Читаем сезоны и периоды жилья на едином снимке
	var seasons []*domain.Season
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := uc.housingRepo.GetByID(txCtx, req.HousingID); err != nil {
			if errors.Is(err, housingRepo.ErrHousingNotFound) {
				uc.logger.Warn("ComputePrice: housing id=%d not found", req.HousingID)
				return ErrHousingNotFound
			}
			return fmt.Errorf("%w: failed to get housing: %v", ErrInternal, err)
		}

		var err error
		seasons, err = uc.seasonRepo.GetByHousingID(txCtx, req.HousingID)
		if err != nil {
			return fmt.Errorf("%w: failed to get seasons: %v", ErrInternal, err)
		}

		periods, err := uc.periodRepo.GetByHousingID(txCtx, req.HousingID)
		if err != nil {
			return fmt.Errorf("%w: failed to get periods: %v", ErrInternal, err)
		}

		domain.AttachPeriods(seasons, periods)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrHousingNotFound) {
			uc.metrics.RecordPriceComputation(metrics.OutcomeInvalidRequest, 0)
			return nil, err
		}
		uc.metrics.RecordPriceComputation(metrics.OutcomeError, 0)
		uc.logger.Error("ComputePrice: failed to load seasons of housing id=%d: %v", req.HousingID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 3. Раскладываем проживание по сезонам
	sets := Decompose(seasons, stay)
	if len(sets) == 0 {
		uc.metrics.RecordPriceComputation(metrics.OutcomeNoSeasonMatch, 0)
		uc.logger.Warn("ComputePrice: no season of housing id=%d covers %s - %s",
			req.HousingID, stay.Start.Format(domain.DateFormat), stay.End.Format(domain.DateFormat))
		return nil, ErrNoSeasonMatch
	}

	// 4. Суммируем ночи * цену сезона
	resp := &Response{
		HousingID: req.HousingID,
		Start:     stay.Start,
		End:       stay.End,
		Total:     decimal.Zero,
		Seasons:   make([]SeasonPrice, 0, len(sets)),
	}

	for _, set := range sortedSets(sets) {
		if !set.Season.HasPrice() {
			uc.logger.Warn("ComputePrice: season id=%d has no base price, counted as 0", set.Season.ID)
		}

		subtotal := set.Season.Price().Mul(decimal.NewFromInt(int64(set.NbOfNights)))
		resp.Total = resp.Total.Add(subtotal)
		resp.Nights += set.NbOfNights
		resp.Seasons = append(resp.Seasons, SeasonPrice{
			SeasonID:   set.Season.ID,
			SeasonName: set.Season.Name,
			BasePrice:  set.Season.BasePrice,
			Nights:     set.NbOfNights,
			Dates:      set.Dates,
			Subtotal:   subtotal,
		})
	}

	uc.metrics.RecordPriceComputation(metrics.OutcomeSuccess, resp.Nights)
	uc.logger.Info("ComputePrice: housing=%d, nights=%d, total=%s", req.HousingID, resp.Nights, resp.Total)

	return resp, nil
}
