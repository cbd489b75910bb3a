package update_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	updatePeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/update_period"
)

const (
	msgInvalidPeriodID    = "некорректный ID периода"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidYearPeriod  = "некорректная граница периода, ожидается DD/MM"
	msgInvalidRange       = "конец периода раньше начала"
	msgPeriodOverlap      = "период пересекается с существующим периодом жилья"
	msgPeriodNotFound     = "период не найден"
)

type Handler struct {
	useCase UpdatePeriodUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePeriodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID, err := strconv.ParseInt(mux.Vars(r)["periodId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /periods/{id} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	var req UpdatePeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /periods/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(periodID)
	if err != nil {
		h.logger.Warn("PUT /periods/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updatePeriod.ErrPeriodOverlap):
			h.logger.Warn("PUT /periods/{id} - Period overlaps: period_id=%d, start=%s, end=%s", periodID, req.Start, req.End)
			handlers.RespondConflict(w, msgPeriodOverlap)

		case errors.Is(err, updatePeriod.ErrInvalidRange):
			h.logger.Warn("PUT /periods/{id} - Invalid range: period_id=%d, start=%s, end=%s", periodID, req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updatePeriod.ErrInvalidInput):
			h.logger.Warn("PUT /periods/{id} - Invalid input: period_id=%d, error=%v", periodID, err)
			handlers.RespondBadRequest(w, msgInvalidYearPeriod)

		case errors.Is(err, updatePeriod.ErrPeriodNotFound):
			h.logger.Warn("PUT /periods/{id} - Period not found: period_id=%d", periodID)
			handlers.RespondNotFound(w, msgPeriodNotFound)

		default:
			h.logger.Error("PUT /periods/{id} - Failed to update period: period_id=%d, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /periods/{id} - Period updated successfully: period_id=%d, name=%s", periodID, result.Name)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
