package rental

import (
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errs.NewKind(errs.KindState, "illegal status transition")

type Rental struct {
	id         uuid.UUID
	resourceID uuid.UUID
	renterID   uuid.UUID
	dateRange  DateRange
	status     Status
	totalPrice Money
}

// NewRental creates a freshly requested rental. Validation of the range
// and the resource's preconditions happens before this constructor;
// price is computed once and immutable afterwards.
func NewRental(resourceID, renterID uuid.UUID, dateRange DateRange, totalPrice Money) *Rental {
	return &Rental{
		id:         uuid.New(),
		resourceID: resourceID,
		renterID:   renterID,
		dateRange:  dateRange,
		status:     StatusRequested,
		totalPrice: totalPrice,
	}
}

// TransitionTo applies a status change after checking the transition
// table. Terminal statuses reject every target; illegal edges are
// rejected, never coerced.
func (r *Rental) TransitionTo(target Status) error {
	if !target.IsValid() || !r.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	r.status = target
	return nil
}

func (r *Rental) ID() uuid.UUID         { return r.id }
func (r *Rental) ResourceID() uuid.UUID { return r.resourceID }
func (r *Rental) RenterID() uuid.UUID   { return r.renterID }
func (r *Rental) DateRange() DateRange  { return r.dateRange }
func (r *Rental) Status() Status        { return r.status }
func (r *Rental) TotalPrice() Money     { return r.totalPrice }
