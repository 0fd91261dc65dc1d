package commands

import (
	"strings"
	"time"

	"lendhub/internal/pkg/errs"
)

var (
	ErrMissingField = errs.NewKind(errs.KindValidation, "all fields are required")
	ErrInvalidDate  = errs.NewKind(errs.KindValidation, "invalid date format")
)

// Calendar dates arrive as "2006-01-02"; full RFC3339 timestamps are
// accepted and truncated to their calendar day during normalization.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingField
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
