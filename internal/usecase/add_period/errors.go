package add_period

import "errors"

var (
	// ErrSeasonNotFound возвращается, когда сезон не найден
	ErrSeasonNotFound = errors.New("add_period: season not found")

	// ErrInvalidRange возвращается, когда конец периода раньше начала
	ErrInvalidRange = errors.New("add_period: end must not be before start")

	// ErrPeriodOverlap возвращается, когда новый период пересекается с периодом того же жилья
	ErrPeriodOverlap = errors.New("add_period: period overlaps an existing period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_period: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_period: internal error")
)
