package compute_price

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/interval"
)

// Decompose раскладывает проживание по сезонам жилья.
//
// Каждый период переносится на каждый календарный год, который затрагивает
// проживание, и пересекается с [Start, End]. Непустые пересечения одного сезона
// объединяются в один BookingDateSet. Пустой результат означает, что ни один
// период не покрывает проживание; сама функция не возвращает ошибок.
func Decompose(seasons []*domain.Season, stay domain.BookingDate) map[int64]*domain.BookingDateSet {
	result := make(map[int64]*domain.BookingDateSet)
	stayRange := stay.Range()

	for _, season := range seasons {
		for _, p := range season.Periods {
			for year := stay.Start.Year(); year <= stay.End.Year(); year++ {
				projected := projectPeriod(p, year)

				sub, ok := interval.Intersect(stayRange, projected)
				if !ok {
					continue
				}

				set, exists := result[season.ID]
				if !exists {
					set = &domain.BookingDateSet{Season: season}
					result[season.ID] = set
				}

				date := domain.BookingDate{Start: sub.Start, End: sub.End}
				set.Dates = append(set.Dates, date)
				set.NbOfNights += nights(date, stay.End)
			}
		}
	}

	for _, set := range result {
		sort.Slice(set.Dates, func(i, j int) bool {
			return set.Dates[i].Start.Before(set.Dates[j].Start)
		})
	}

	return result
}

// projectPeriod переносит период на год. 29/02 в невисокосном году:
// как начало становится 01/03, как конец 28/02.
func projectPeriod(p *domain.Period, year int) interval.Range[time.Time] {
	return interval.New(p.Start.ToDate(year), p.End.ToDateClamped(year))
}

// nights считает ночи поддиапазона [s, e].
// Если поддиапазон оборван границей сезона, а не выездом, ночь с e на e+1
// тоже принадлежит этому сезону.
func nights(sub domain.BookingDate, checkout time.Time) int {
	n := sub.Days()
	if !sub.End.Equal(checkout) {
		n++
	}
	return n
}

// sortedSets возвращает наборы в хронологическом порядке первого поддиапазона
func sortedSets(sets map[int64]*domain.BookingDateSet) []*domain.BookingDateSet {
	out := make([]*domain.BookingDateSet, 0, len(sets))
	for _, set := range sets {
		out = append(out, set)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Dates[0].Start.Before(out[j].Dates[0].Start)
	})
	return out
}
