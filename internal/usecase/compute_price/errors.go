package compute_price

import "errors"

var (
	// ErrHousingNotFound возвращается, когда жилье не найдено
	ErrHousingNotFound = errors.New("compute_price: housing not found")

	// ErrInvalidDateRange возвращается, когда выезд раньше заезда или заезд в прошлом
	ErrInvalidDateRange = errors.New("compute_price: invalid date range")

	// ErrNoSeasonMatch возвращается, когда ни один период жилья не покрывает проживание
	ErrNoSeasonMatch = errors.New("compute_price: no season matches the stay")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compute_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_price: internal error")
)
