package season

import "errors"

var (
	// ErrSeasonNotFound возвращается, когда сезон не найден
	ErrSeasonNotFound = errors.New("season.repository: season not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("season.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("season.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("season.repository: failed to scan row")
)
