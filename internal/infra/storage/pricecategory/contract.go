package pricecategory

import (
	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
