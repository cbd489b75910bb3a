package update_period

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = errors.New("update_period: period not found")

	// ErrInvalidRange возвращается, когда конец периода раньше начала
	ErrInvalidRange = errors.New("update_period: end must not be before start")

	// ErrPeriodOverlap возвращается, когда новые границы пересекаются с другим периодом жилья
	ErrPeriodOverlap = errors.New("update_period: period overlaps an existing period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_period: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_period: internal error")
)
