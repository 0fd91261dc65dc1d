//go:build unit

package builder

import (
	"time"

	domreview "lendhub/internal/domain/review"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ResourceID uuid.UUID
	RentalID   uuid.UUID
	ReviewerID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ResourceID: uuid.New(),
		RentalID:   uuid.New(),
		ReviewerID: uuid.New(),
		Rating:     5,
		Comment:    "Great drill, well maintained.",
		CreatedAt:  time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.ResourceID, b.RentalID, b.ReviewerID, b.Rating, b.Comment, b.CreatedAt)
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         uuid.New(),
		ResourceID: b.ResourceID,
		RentalID:   b.RentalID,
		ReviewerID: b.ReviewerID,
		Rating:     b.Rating,
		Comment:    b.Comment,
		CreatedAt:  b.CreatedAt,
	}
}
