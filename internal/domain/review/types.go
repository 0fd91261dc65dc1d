package review

import "lendhub/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.NewKind(errs.KindValidation, "rating must be between 1 and 5")
	ErrEmptyComment   = errs.NewKind(errs.KindValidation, "comment cannot be empty")
	ErrCommentTooLong = errs.NewKind(errs.KindValidation, "comment exceeds maximum length")

	ErrReviewerNotRenter  = errs.NewKind(errs.KindAuthorization, "only the renter can leave a review")
	ErrRentalNotCompleted = errs.NewKind(errs.KindState, "reviews can only be left for completed rentals")
	ErrAlreadyReviewed    = errs.NewKind(errs.KindConflict, "review already exists for this rental")
)
