package rental

// Status is the fixed vocabulary for a rental's lifecycle. The stored
// strings match these spellings exactly.
type Status string

const (
	StatusRequested Status = "Requested"
	StatusApproved  Status = "Approved"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OccupiesCalendar reports whether a rental in this status blocks the
// resource's calendar for overlap purposes.
func (s Status) OccupiesCalendar() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusActive:
		return true
	default:
		return false
	}
}

// ActiveStatuses are the statuses during which a rental occupies the
// resource's calendar.
func ActiveStatuses() []Status {
	return []Status{StatusRequested, StatusApproved, StatusActive}
}

var transitions = map[Status][]Status{
	StatusRequested: {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted},
}

// CanTransitionTo reports whether target is a legal next status. All
// transitions are owner-initiated; terminal statuses have no edges.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
