// Package interval реализует пересечение замкнутых интервалов над любым упорядоченным типом.
// Касание концов считается пересечением: [5,10] и [10,15] пересекаются в {10}.
package interval

// Comparable тип с полным порядком. Подходят time.Time и types.YearPeriod.
type Comparable[T any] interface {
	Compare(other T) int
}

// Range замкнутый интервал [Start, End]
type Range[T Comparable[T]] struct {
	Start T
	End   T
}

// New создает интервал
func New[T Comparable[T]](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Valid возвращает true, если Start <= End
func (r Range[T]) Valid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Contains проверяет, что значение лежит внутри интервала (включая границы)
func (r Range[T]) Contains(v T) bool {
	return r.Start.Compare(v) <= 0 && v.Compare(r.End) <= 0
}

// Intersect возвращает [max(starts), min(ends)], если он непуст
func Intersect[T Comparable[T]](a, b Range[T]) (Range[T], bool) {
	start := a.Start
	if b.Start.Compare(start) > 0 {
		start = b.Start
	}

	end := a.End
	if b.End.Compare(end) < 0 {
		end = b.End
	}

	if start.Compare(end) > 0 {
		return Range[T]{}, false
	}
	return Range[T]{Start: start, End: end}, true
}

// IntersectsAny возвращает true, если r пересекается хотя бы с одним интервалом из ranges
func IntersectsAny[T Comparable[T]](r Range[T], ranges []Range[T]) bool {
	for _, other := range ranges {
		if _, ok := Intersect(r, other); ok {
			return true
		}
	}
	return false
}
