package housing

import "errors"

var (
	// ErrHousingNotFound возвращается, когда жилье не найдено
	ErrHousingNotFound = errors.New("housing.repository: housing not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("housing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("housing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("housing.repository: failed to scan row")
)
