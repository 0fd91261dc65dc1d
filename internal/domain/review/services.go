package review

import (
	"lendhub/internal/domain/rental"

	"github.com/google/uuid"
)

// RentalState is the slice of freshly-loaded rental state the gate
// needs; callers must read it under the same transaction that writes
// the review.
type RentalState struct {
	RenterID   uuid.UUID
	Status     rental.Status
	IsReviewed bool
}

// CanReview checks eligibility in order: reviewer must be the renter,
// the rental must be completed, and no review may exist yet.
func CanReview(st RentalState, reviewerID uuid.UUID) error {
	if st.RenterID != reviewerID {
		return ErrReviewerNotRenter
	}
	if st.Status != rental.StatusCompleted {
		return ErrRentalNotCompleted
	}
	if st.IsReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}
