package get_price_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgNotFound          = "категория не найдена"
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

// Handle GET /api/v1/price-categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(mux.Vars(r)["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /price-categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	category, err := h.service.GetByID(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, pricecategories.ErrPriceCategoryNotFound):
			h.logger.Warn("GET /price-categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /price-categories/{id} - Failed to get category: category_id=%d, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /price-categories/{id} - Category retrieved successfully: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusOK, category)
}
