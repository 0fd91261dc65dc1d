//go:build unit

package rental_test

import (
	"testing"

	"lendhub/internal/domain/rental"

	"github.com/stretchr/testify/assert"
)

func TestPerDayPriceCalculator(t *testing.T) {
	calc := rental.NewPerDayPriceCalculator()

	cases := []struct {
		name       string
		r          rental.DateRange
		rateCents  int64
		totalCents int64
	}{
		{"two days at 100", mustRange(t, date(2025, 6, 10), date(2025, 6, 12)), 10000, 20000},
		{"single day", mustRange(t, date(2025, 6, 10), date(2025, 6, 11)), 1500, 1500},
		{"week-long", mustRange(t, date(2025, 6, 1), date(2025, 6, 8)), 2000, 14000},
		{"zero-length range still charges one day", mustRange(t, date(2025, 6, 10), date(2025, 6, 10)), 1500, 1500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.totalCents, calc.TotalCents(tc.r, tc.rateCents))
		})
	}
}
