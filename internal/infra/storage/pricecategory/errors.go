package pricecategory

import "errors"

var (
	// ErrPriceCategoryNotFound возвращается, когда категория цены не найдена
	ErrPriceCategoryNotFound = errors.New("pricecategory.repository: price category not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricecategory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricecategory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricecategory.repository: failed to scan row")
)
