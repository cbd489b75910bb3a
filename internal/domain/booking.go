package domain

import (
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/interval"
)

// BookingDate диапазон проживания: дата заезда и дата выезда.
// Даты без времени (полночь UTC).
type BookingDate struct {
	Start time.Time
	End   time.Time
}

// NewBookingDate создает диапазон, отбрасывая время у дат
func NewBookingDate(start, end time.Time) BookingDate {
	return BookingDate{Start: DateOnly(start), End: DateOnly(end)}
}

// Range возвращает диапазон как замкнутый интервал дат
func (b BookingDate) Range() interval.Range[time.Time] {
	return interval.New(b.Start, b.End)
}

// Days количество суток между Start и End
func (b BookingDate) Days() int {
	return DaysBetween(b.Start, b.End)
}

// BookingDateSet часть проживания, попадающая в один сезон
type BookingDateSet struct {
	Season     *Season
	NbOfNights int
	Dates      []BookingDate
}

// DateOnly приводит момент времени к полуночи UTC той же календарной даты
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween количество календарных суток от a до b
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
