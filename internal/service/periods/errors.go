package periods

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = errors.New("period not found")

	// ErrHousingNotFound возвращается, когда жилье не найдено
	ErrHousingNotFound = errors.New("housing not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
