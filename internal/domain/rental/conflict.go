package rental

import "github.com/google/uuid"

// CalendarEntry is an existing active-status rental projected onto the
// resource's calendar.
type CalendarEntry struct {
	RentalID uuid.UUID
	Range    DateRange
}

// FindConflict returns the first calendar entry the candidate range
// collides with, or nil. Callers pass only entries for the candidate's
// resource whose status occupies the calendar.
func FindConflict(candidate DateRange, existing []CalendarEntry) *CalendarEntry {
	for i := range existing {
		if candidate.Overlaps(existing[i].Range) {
			return &existing[i]
		}
	}
	return nil
}
