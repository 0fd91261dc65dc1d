package rental

// PriceCalculator computes a rental's immutable total price from its
// date range and the resource's daily rate.
type PriceCalculator interface {
	TotalCents(r DateRange, dailyRateCents int64) int64
}

// PerDayPriceCalculator charges the daily rate per started day, with a
// one-day minimum so a same-day booking never prices to zero.
type PerDayPriceCalculator struct{}

func NewPerDayPriceCalculator() *PerDayPriceCalculator {
	return &PerDayPriceCalculator{}
}

func (pc *PerDayPriceCalculator) TotalCents(r DateRange, dailyRateCents int64) int64 {
	days := r.Days()
	if days < 1 {
		days = 1
	}
	return int64(days) * dailyRateCents
}
