//go:build unit

package rental_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) rental.DateRange {
	t.Helper()
	return rental.ReconstructDateRange(start, end)
}

func TestNewDateRange(t *testing.T) {
	today := date(2025, 6, 1)

	t.Run("valid future range", func(t *testing.T) {
		r, err := rental.NewDateRange(date(2025, 6, 10), date(2025, 6, 12), today)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 6, 10), r.Start())
		assert.Equal(t, date(2025, 6, 12), r.End())
	})

	t.Run("start today is allowed", func(t *testing.T) {
		_, err := rental.NewDateRange(today, date(2025, 6, 2), today)
		assert.NoError(t, err)
	})

	t.Run("start in the past", func(t *testing.T) {
		_, err := rental.NewDateRange(date(2025, 5, 31), date(2025, 6, 2), today)
		assert.ErrorIs(t, err, rental.ErrStartDateInPast)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := rental.NewDateRange(date(2025, 6, 10), date(2025, 6, 10), today)
		assert.ErrorIs(t, err, rental.ErrEndNotAfterStart)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := rental.NewDateRange(date(2025, 6, 12), date(2025, 6, 10), today)
		assert.ErrorIs(t, err, rental.ErrEndNotAfterStart)
	})

	t.Run("time of day is stripped", func(t *testing.T) {
		r, err := rental.NewDateRange(
			time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC),
			time.Date(2025, 6, 12, 3, 0, 0, 0, time.UTC),
			today,
		)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 6, 10), r.Start())
		assert.Equal(t, date(2025, 6, 12), r.End())
	})
}

func TestDateRangeDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		days  int
	}{
		{"two days", date(2025, 6, 10), date(2025, 6, 12), 2},
		{"single day", date(2025, 6, 10), date(2025, 6, 11), 1},
		{"a week", date(2025, 6, 1), date(2025, 6, 8), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.days, mustRange(t, tc.start, tc.end).Days())
		})
	}
}

// Closed-interval semantics: a range ending on a given day collides
// with another starting on that same day.
func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, date(2025, 6, 10), date(2025, 6, 12))

	cases := []struct {
		name     string
		other    rental.DateRange
		overlaps bool
	}{
		{"identical", mustRange(t, date(2025, 6, 10), date(2025, 6, 12)), true},
		{"contained", mustRange(t, date(2025, 6, 10), date(2025, 6, 11)), true},
		{"containing", mustRange(t, date(2025, 6, 9), date(2025, 6, 13)), true},
		{"partial front", mustRange(t, date(2025, 6, 9), date(2025, 6, 10)), true},
		{"partial back", mustRange(t, date(2025, 6, 12), date(2025, 6, 14)), true},
		{"touching start endpoint", mustRange(t, date(2025, 6, 8), date(2025, 6, 10)), true},
		{"touching end endpoint", mustRange(t, date(2025, 6, 12), date(2025, 6, 15)), true},
		{"strictly before", mustRange(t, date(2025, 6, 5), date(2025, 6, 9)), false},
		{"strictly after", mustRange(t, date(2025, 6, 13), date(2025, 6, 15)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}
