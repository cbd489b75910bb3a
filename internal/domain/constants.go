package domain

// Ограничения длины названий
const (
	MaxHousingNameLength       = 256
	MaxSeasonNameLength        = 128
	MaxPriceCategoryNameLength = 128
)

// Ограничения цены за ночь: NUMERIC(7,2)
const (
	MaxBasePriceDigits = 7
	BasePriceScale     = 2
)

// Форматы дат
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	YearPeriodFormat = "DD/MM"
)
