package queries

import (
	"context"
	"math"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	// ListByResource aggregates the rating on read; nothing maintains
	// it incrementally.
	ListByResource(ctx context.Context, resourceID uuid.UUID) (*ResourceReviewsView, error)
}

type ReviewReadStore interface {
	FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID) (*ResourceReviewsView, error) {
	reviews, err := q.store.FindByResourceID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	view := &ResourceReviewsView{
		Reviews:      reviews,
		TotalReviews: len(reviews),
	}

	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(reviews))
		// one decimal, matching what availability calendars render
		view.AverageRating = math.Round(avg*10) / 10
	}

	return view, nil
}
