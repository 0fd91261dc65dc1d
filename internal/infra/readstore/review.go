package readstore

import (
	"context"

	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const findReviewsByResourceSQL = `
SELECT id, resource_id, rental_id, reviewer_id, rating, comment, created_at
FROM reviews
WHERE resource_id = $1
ORDER BY created_at DESC
`

func (s *ReviewReadStore) FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, findReviewsByResourceSQL, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by resource", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.ResourceID, &v.RentalID, &v.ReviewerID, &v.Rating, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}

	return result, nil
}
