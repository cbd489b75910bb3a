package compute_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	computePrice "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/compute_price"
)

const (
	msgInvalidHousingID = "некорректный ID жилья"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD в параметрах start и end"
	msgInvalidDateRange = "дата выезда раньше даты заезда или дата заезда в прошлом"
	msgHousingNotFound  = "жилье не найдено"
	msgNoSeasonMatch    = "ни один сезон жилья не покрывает выбранные даты"
)

type Handler struct {
	useCase ComputePriceUseCase
	logger  Logger
}

func NewHandler(useCase ComputePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/housings/{housingId}/price?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /housings/{id}/price - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	query := r.URL.Query()
	start, end, err := parseStay(query.Get("start"), query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /housings/{id}/price - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &computePrice.Request{
		HousingID: housingID,
		Start:     start,
		End:       end,
	})
	if err != nil {
		switch {
		case errors.Is(err, computePrice.ErrInvalidDateRange):
			h.logger.Warn("GET /housings/{id}/price - Invalid date range: housing_id=%d, error=%v", housingID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, computePrice.ErrInvalidInput):
			h.logger.Warn("GET /housings/{id}/price - Invalid input: housing_id=%d, error=%v", housingID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, computePrice.ErrHousingNotFound):
			h.logger.Warn("GET /housings/{id}/price - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgHousingNotFound)

		case errors.Is(err, computePrice.ErrNoSeasonMatch):
			h.logger.Warn("GET /housings/{id}/price - No season match: housing_id=%d", housingID)
			handlers.RespondUnprocessable(w, msgNoSeasonMatch)

		default:
			h.logger.Error("GET /housings/{id}/price - Failed to compute price: housing_id=%d, error=%v", housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housings/{id}/price - Price computed successfully: housing_id=%d, nights=%d, total=%s",
		housingID, result.Nights, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
