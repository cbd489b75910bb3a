package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReferenceYear опорный год для арифметики над YearPeriod.
// Високосный, чтобы 29/02 оставался допустимым значением.
const ReferenceYear = 2020

var (
	// ErrInvalidRange возвращается, когда конец периода раньше начала
	ErrInvalidRange = errors.New("year period: end must not be before start")

	// ErrInvalidYearPeriod возвращается при некорректных дне или месяце
	ErrInvalidYearPeriod = errors.New("year period: invalid day or month")
)

// YearPeriod точка годового календаря (день и месяц) без привязки к году.
// Сравнение идет по (месяц, день).
type YearPeriod struct {
	Day   int
	Month int
}

// NewYearPeriod создает YearPeriod с валидацией
func NewYearPeriod(day, month int) (YearPeriod, error) {
	p := YearPeriod{Day: day, Month: month}
	if err := p.Validate(); err != nil {
		return YearPeriod{}, err
	}
	return p, nil
}

// YearPeriodFromDate отбрасывает год у даты
func YearPeriodFromDate(t time.Time) YearPeriod {
	return YearPeriod{Day: t.Day(), Month: int(t.Month())}
}

// ParseYearPeriod парсит строку формата "DD/MM" (ведущие нули необязательны)
func ParseYearPeriod(s string) (YearPeriod, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return YearPeriod{}, fmt.Errorf("%w: expected DD/MM, got %q", ErrInvalidYearPeriod, s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearPeriod{}, fmt.Errorf("%w: day %q", ErrInvalidYearPeriod, parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearPeriod{}, fmt.Errorf("%w: month %q", ErrInvalidYearPeriod, parts[1])
	}

	return NewYearPeriod(day, month)
}

// Validate проверяет, что день существует в месяце опорного года
func (p YearPeriod) Validate() error {
	if p.Month < 1 || p.Month > 12 || p.Day < 1 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidYearPeriod, p.Day, p.Month)
	}
	if p.Day > daysIn(time.Month(p.Month), ReferenceYear) {
		return fmt.Errorf("%w: %d/%d", ErrInvalidYearPeriod, p.Day, p.Month)
	}
	return nil
}

// IsZero возвращает true для незаполненного значения
func (p YearPeriod) IsZero() bool {
	return p.Day == 0 && p.Month == 0
}

// Compare возвращает -1, 0 или 1. Год не учитывается.
func (p YearPeriod) Compare(other YearPeriod) int {
	switch {
	case p.Month < other.Month:
		return -1
	case p.Month > other.Month:
		return 1
	case p.Day < other.Day:
		return -1
	case p.Day > other.Day:
		return 1
	default:
		return 0
	}
}

// Equal сравнивает день и месяц
func (p YearPeriod) Equal(other YearPeriod) bool {
	return p.Compare(other) == 0
}

// Before возвращает true, если p строго раньше other
func (p YearPeriod) Before(other YearPeriod) bool {
	return p.Compare(other) < 0
}

// After возвращает true, если p строго позже other
func (p YearPeriod) After(other YearPeriod) bool {
	return p.Compare(other) > 0
}

// ToDate переносит период на конкретный год.
// 29/02 в невисокосном году нормализуется time.Date в 01/03.
func (p YearPeriod) ToDate(year int) time.Time {
	return time.Date(year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC)
}

// ToDateClamped переносит период на конкретный год, прижимая день к концу месяца.
// 29/02 в невисокосном году становится 28/02. Используется для правой границы.
func (p YearPeriod) ToDateClamped(year int) time.Time {
	day := min(p.Day, daysIn(time.Month(p.Month), year))
	return time.Date(year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
}

// AddDays сдвигает период на n дней через опорный год (31/12 + 1 = 01/01)
func (p YearPeriod) AddDays(n int) YearPeriod {
	return YearPeriodFromDate(p.ToDate(ReferenceYear).AddDate(0, 0, n))
}

// SubtractDays сдвигает период на n дней назад (01/01 - 1 = 31/12)
func (p YearPeriod) SubtractDays(n int) YearPeriod {
	return p.AddDays(-n)
}

// String возвращает "DD/MM", тот же формат, что и в JSON
func (p YearPeriod) String() string {
	return fmt.Sprintf("%02d/%02d", p.Day, p.Month)
}

// MarshalText сериализует период в "DD/MM"
func (p YearPeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText парсит период из "DD/MM"
func (p *YearPeriod) UnmarshalText(text []byte) error {
	parsed, err := ParseYearPeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value реализует driver.Valuer: период хранится как DATE опорного года
func (p YearPeriod) Value() (driver.Value, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.ToDate(ReferenceYear), nil
}

// Scan реализует sql.Scanner
func (p *YearPeriod) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*p = YearPeriodFromDate(v)
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v[:min(len(v), 10)])
		if err != nil {
			return fmt.Errorf("%w: cannot scan %q", ErrInvalidYearPeriod, v)
		}
		*p = YearPeriodFromDate(t)
		return nil
	case []byte:
		return p.Scan(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidYearPeriod, src)
	}
}

// CheckRange проверяет согласованность границ периода.
// start == end допустим, переход через Новый год нужно разбивать на два периода.
func CheckRange(start, end YearPeriod) error {
	if end.Before(start) {
		return fmt.Errorf("%w: %s - %s", ErrInvalidRange, start, end)
	}
	return nil
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
