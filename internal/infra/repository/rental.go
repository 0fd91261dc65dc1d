package repository

import (
	"context"

	"lendhub/internal/domain/rental"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"

	"github.com/google/uuid"
)

type RentalRepository struct{}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

const insertRentalSQL = `
INSERT INTO rentals (id, resource_id, renter_id, start_date, end_date, status, total_price_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (r *RentalRepository) Create(ctx context.Context, dbtx db.DBTX, entity *rental.Rental) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertRentalSQL,
		entity.ID(),
		entity.ResourceID(),
		entity.RenterID(),
		entity.DateRange().Start(),
		entity.DateRange().End(),
		entity.Status().String(),
		entity.TotalPrice().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rental", err)
	}

	return id, nil
}

const updateRentalStatusSQL = `
UPDATE rentals
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2
`

// UpdateStatus is a compare-and-swap on the previous status; zero rows
// means a concurrent transition won.
func (r *RentalRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to rental.Status) error {
	tag, err := dbtx.Exec(ctx, updateRentalStatusSQL, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update rental status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

const setRentalReviewedSQL = `
UPDATE rentals
SET is_reviewed = true, review_id = $2, updated_at = now()
WHERE id = $1 AND is_reviewed = false
`

func (r *RentalRepository) SetReviewed(ctx context.Context, dbtx db.DBTX, id, reviewID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, setRentalReviewedSQL, id, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark rental reviewed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental already reviewed", nil, infra.KindDuplicateKey)
	}
	return nil
}
