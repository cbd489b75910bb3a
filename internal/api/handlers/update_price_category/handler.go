package update_price_category

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
	msgInvalidCategoryID  = "некорректный ID категории"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название категории"
	msgNotFound           = "категория не найдена"
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

// Handle PUT /api/v1/price-categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(mux.Vars(r)["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /price-categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	var req models.PriceCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /price-categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.UpdateName(r.Context(), categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pricecategories.ErrInvalidInput):
			h.logger.Warn("PUT /price-categories/{id} - Invalid input: category_id=%d, error=%v", categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, pricecategories.ErrPriceCategoryNotFound):
			h.logger.Warn("PUT /price-categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /price-categories/{id} - Failed to update category: category_id=%d, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /price-categories/{id} - Category updated successfully: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusOK, category)
}
