package create_price_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories/models"
)

const (
	msgInvalidHousingID   = "некорректный ID жилья"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название категории"
	msgHousingNotFound    = "жилье не найдено"
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

// Handle POST /api/v1/housings/{housingId}/price-categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /housings/{id}/price-categories - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	var req models.PriceCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /housings/{id}/price-categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.Create(r.Context(), housingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pricecategories.ErrInvalidInput):
			h.logger.Warn("POST /housings/{id}/price-categories - Invalid input: housing_id=%d, error=%v", housingID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, pricecategories.ErrHousingNotFound):
			h.logger.Warn("POST /housings/{id}/price-categories - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgHousingNotFound)

		default:
			h.logger.Error("POST /housings/{id}/price-categories - Failed to create category: housing_id=%d, error=%v",
				housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /housings/{id}/price-categories - Category created successfully: category_id=%d, housing_id=%d",
		category.ID, housingID)
	handlers.RespondJSON(w, http.StatusCreated, category)
}
