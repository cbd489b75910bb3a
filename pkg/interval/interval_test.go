package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

type num int

func (n num) Compare(other num) int {
	switch {
	case n < other:
		return -1
	case n > other:
		return 1
	default:
		return 0
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Range[num]
		expected Range[num]
		ok       bool
	}{
		{
			name: "range on the left",
			a:    New[num](5, 10),
			b:    New[num](1, 4),
		},
		{
			name:     "touching on the left",
			a:        New[num](5, 10),
			b:        New[num](3, 5),
			expected: New[num](5, 5),
			ok:       true,
		},
		{
			name: "range on the right",
			a:    New[num](1, 4),
			b:    New[num](6, 10),
		},
		{
			name:     "touching on the right",
			a:        New[num](5, 10),
			b:        New[num](10, 15),
			expected: New[num](10, 10),
			ok:       true,
		},
		{
			name:     "a includes b",
			a:        New[num](1, 10),
			b:        New[num](3, 5),
			expected: New[num](3, 5),
			ok:       true,
		},
		{
			name:     "a included in b",
			a:        New[num](3, 5),
			b:        New[num](1, 10),
			expected: New[num](3, 5),
			ok:       true,
		},
		{
			name:     "equal ranges",
			a:        New[num](5, 10),
			b:        New[num](5, 10),
			expected: New[num](5, 10),
			ok:       true,
		},
		{
			name:     "partial overlap",
			a:        New[num](1, 7),
			b:        New[num](4, 12),
			expected: New[num](4, 7),
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}

			// пересечение симметрично
			rev, revOK := Intersect(tt.b, tt.a)
			assert.Equal(t, ok, revOK)
			assert.Equal(t, got, rev)
		})
	}
}

func TestIntersect_SharedPointProperty(t *testing.T) {
	for s1 := num(0); s1 < 6; s1++ {
		for e1 := s1; e1 < 6; e1++ {
			for s2 := num(0); s2 < 6; s2++ {
				for e2 := s2; e2 < 6; e2++ {
					a, b := New(s1, e1), New(s2, e2)

					shared := false
					for p := num(0); p < 6; p++ {
						if a.Contains(p) && b.Contains(p) {
							shared = true
							break
						}
					}

					_, ok := Intersect(a, b)
					assert.Equal(t, shared, ok, "a=%v b=%v", a, b)
				}
			}
		}
	}
}

func TestIntersectsAny(t *testing.T) {
	ranges := []Range[num]{New[num](1, 4), New[num](5, 8), New[num](20, 24)}

	assert.True(t, IntersectsAny(New[num](10, 13), append(ranges, New[num](12, 15))))
	assert.False(t, IntersectsAny(New[num](10, 13), append(ranges, New[num](14, 17))))
	assert.False(t, IntersectsAny(New[num](10, 13), nil))
}

func TestIntersect_Dates(t *testing.T) {
	day := func(m time.Month, d int) time.Time { return time.Date(2021, m, d, 0, 0, 0, 0, time.UTC) }

	got, ok := Intersect(New(day(1, 20), day(4, 15)), New(day(1, 15), day(3, 31)))
	assert.True(t, ok)
	assert.Equal(t, New(day(1, 20), day(3, 31)), got)
}

func TestIntersect_YearPeriods(t *testing.T) {
	yp := func(d, m int) types.YearPeriod { return types.YearPeriod{Day: d, Month: m} }

	_, ok := Intersect(New(yp(1, 1), yp(31, 3)), New(yp(31, 3), yp(1, 4)))
	assert.True(t, ok)

	_, ok = Intersect(New(yp(1, 1), yp(31, 3)), New(yp(1, 4), yp(30, 4)))
	assert.False(t, ok)
}

func TestRange_Valid(t *testing.T) {
	assert.True(t, New[num](3, 3).Valid())
	assert.True(t, New[num](3, 4).Valid())
	assert.False(t, New[num](4, 3).Valid())
}
