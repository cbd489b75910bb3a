package add_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	addPeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/add_period"
)

const (
	msgInvalidSeasonID    = "некорректный ID сезона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidYearPeriod  = "некорректная граница периода, ожидается DD/MM"
	msgInvalidRange       = "конец периода раньше начала"
	msgPeriodOverlap      = "период пересекается с существующим периодом жилья"
	msgSeasonNotFound     = "сезон не найден"
)

type Handler struct {
	useCase AddPeriodUseCase
	logger  Logger
}

func NewHandler(useCase AddPeriodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/seasons/{seasonId}/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seasonID, err := strconv.ParseInt(mux.Vars(r)["seasonId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /seasons/{id}/periods - Invalid season ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeasonID)
		return
	}

	var req AddPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /seasons/{id}/periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(seasonID)
	if err != nil {
		h.logger.Warn("POST /seasons/{id}/periods - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addPeriod.ErrPeriodOverlap):
			h.logger.Warn("POST /seasons/{id}/periods - Period overlaps: season_id=%d, start=%s, end=%s",
				seasonID, req.Start, req.End)
			handlers.RespondConflict(w, msgPeriodOverlap)

		case errors.Is(err, addPeriod.ErrInvalidRange):
			h.logger.Warn("POST /seasons/{id}/periods - Invalid range: season_id=%d, start=%s, end=%s",
				seasonID, req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, addPeriod.ErrInvalidInput):
			h.logger.Warn("POST /seasons/{id}/periods - Invalid input: season_id=%d, error=%v", seasonID, err)
			handlers.RespondBadRequest(w, msgInvalidYearPeriod)

		case errors.Is(err, addPeriod.ErrSeasonNotFound):
			h.logger.Warn("POST /seasons/{id}/periods - Season not found: season_id=%d", seasonID)
			handlers.RespondNotFound(w, msgSeasonNotFound)

		default:
			h.logger.Error("POST /seasons/{id}/periods - Failed to add period: season_id=%d, error=%v", seasonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /seasons/{id}/periods - Period added successfully: period_id=%d, season_id=%d, housing_id=%d",
		result.ID, seasonID, result.HousingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
