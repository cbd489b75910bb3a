package seasons

import "errors"

var (
	// ErrSeasonNotFound возвращается, когда сезон не найден
	ErrSeasonNotFound = errors.New("season not found")

	// ErrHousingNotFound возвращается, когда жилье не найдено
	ErrHousingNotFound = errors.New("housing not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
