package list_price_categories

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories"
)

const (
	msgInvalidHousingID = "некорректный ID жилья"
	msgHousingNotFound  = "жилье не найдено"
)

type Handler struct {
	service PriceCategoryService
	logger  Logger
}

func NewHandler(service PriceCategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/housings/{housingId}/price-categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /housings/{id}/price-categories - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	list, err := h.service.ListByHousing(r.Context(), housingID)
	if err != nil {
		switch {
		case errors.Is(err, pricecategories.ErrHousingNotFound):
			h.logger.Warn("GET /housings/{id}/price-categories - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgHousingNotFound)

		default:
			h.logger.Error("GET /housings/{id}/price-categories - Failed to list categories: housing_id=%d, error=%v",
				housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housings/{id}/price-categories - Categories listed successfully: housing_id=%d, count=%d",
		housingID, len(list.PriceCategories))
	handlers.RespondJSON(w, http.StatusOK, list)
}
