package repository

import (
	"context"

	"lendhub/internal/domain/review"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const insertReviewSQL = `
INSERT INTO reviews (id, resource_id, rental_id, reviewer_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReviewSQL,
		rev.ID(),
		rev.ResourceID(),
		rev.RentalID(),
		rev.ReviewerID(),
		rev.Rating().Value(),
		rev.Comment().String(),
		rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}
