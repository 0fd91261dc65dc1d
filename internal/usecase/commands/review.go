package commands

import (
	"context"

	"lendhub/internal/domain/rental"
	domreview "lendhub/internal/domain/review"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewCommands interface {
	SubmitReview(ctx context.Context, rentalID, reviewerID uuid.UUID, rating int, comment string) (*queries.ReviewView, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// SubmitReview re-validates eligibility against state loaded under a
// row lock, then inserts the review and flips the rental's review
// linkage in the same transaction; the pair is not separable. The
// unique index on reviews.rental_id backs the one-review rule against
// anything the lock misses.
func (uc *reviewUseCaseImpl) SubmitReview(ctx context.Context, rentalID, reviewerID uuid.UUID, rating int, comment string) (*queries.ReviewView, error) {
	var rev *domreview.Review

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RentalByIDForUpdate(ctx, rentalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}

		state := domreview.RentalState{
			RenterID:   snap.RenterID,
			Status:     rental.Status(snap.Status),
			IsReviewed: snap.IsReviewed,
		}
		if derr = domreview.CanReview(state, reviewerID); derr != nil {
			return derr
		}

		rev, derr = domreview.NewReview(snap.ResourceID, rentalID, reviewerID, rating, comment, uc.clock.Now())
		if derr != nil {
			return derr
		}

		if _, derr = tx.Reviews().Create(ctx, tx.DB(), rev); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return domreview.ErrAlreadyReviewed
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}

		if derr = tx.Rentals().SetReviewed(ctx, tx.DB(), rentalID, rev.ID()); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.ReviewView{
		ID:         rev.ID(),
		ResourceID: rev.ResourceID(),
		RentalID:   rev.RentalID(),
		ReviewerID: rev.ReviewerID(),
		Rating:     rev.Rating().Value(),
		Comment:    rev.Comment().String(),
		CreatedAt:  rev.CreatedAt(),
	}, nil
}
