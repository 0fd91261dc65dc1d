package rental

import (
	"time"

	"lendhub/internal/pkg/errs"
)

var (
	ErrStartDateInPast  = errs.NewKind(errs.KindValidation, "start date cannot be in the past")
	ErrEndNotAfterStart = errs.NewKind(errs.KindValidation, "end date must be after start date")
)

// NormalizeDate strips the time-of-day, pinning the value to midnight
// UTC so range arithmetic never trips over timezone boundaries.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange is a calendar date range normalized to midnight UTC.
// Overlap semantics are closed-interval: touching endpoints collide.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange normalizes and validates a requested range against
// today (itself already normalized).
func NewDateRange(start, end, today time.Time) (DateRange, error) {
	s := NormalizeDate(start)
	e := NormalizeDate(end)

	if s.Before(today) {
		return DateRange{}, ErrStartDateInPast
	}
	if !e.After(s) {
		return DateRange{}, ErrEndNotAfterStart
	}

	return DateRange{start: s, end: e}, nil
}

// ReconstructDateRange rebuilds a stored range without re-validating
// against today; persisted rentals may legitimately start in the past.
func ReconstructDateRange(start, end time.Time) DateRange {
	return DateRange{start: NormalizeDate(start), end: NormalizeDate(end)}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Days is the rounded-up length of the range in whole days.
func (r DateRange) Days() int {
	d := r.end.Sub(r.start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Overlaps applies the closed-interval test: [a,b] and [c,d] overlap
// iff a <= d && c <= b. This single inequality pair subsumes the
// case-split variants and must not be re-expanded into them.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsPositive() bool { return m.cents > 0 }
