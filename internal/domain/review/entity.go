package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one-time post-completion feedback: at most one per rental,
// written by the renter.
type Review struct {
	id         uuid.UUID
	resourceID uuid.UUID
	rentalID   uuid.UUID
	reviewerID uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

func NewReview(resourceID, rentalID, reviewerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		resourceID: resourceID,
		rentalID:   rentalID,
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) ResourceID() uuid.UUID { return r.resourceID }
func (r *Review) RentalID() uuid.UUID   { return r.rentalID }
func (r *Review) ReviewerID() uuid.UUID { return r.reviewerID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
