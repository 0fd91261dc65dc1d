package readstore

import (
	"context"
	"time"

	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(dbtx db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: dbtx}
}

const findRentalByIDSQL = `
SELECT r.id, r.resource_id, p.name, r.renter_id, p.owner_id,
       r.start_date, r.end_date, r.status, r.total_price_cents,
       r.is_reviewed, r.review_id, r.created_at, r.updated_at
FROM rentals r
JOIN resources p ON p.id = r.resource_id
WHERE r.id = $1
`

func (s *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	var v queries.RentalView
	err := s.db.QueryRow(ctx, findRentalByIDSQL, id).Scan(
		&v.ID, &v.ResourceID, &v.ResourceName, &v.RenterID, &v.OwnerID,
		&v.StartDate, &v.EndDate, &v.Status, &v.TotalPriceCents,
		&v.IsReviewed, &v.ReviewID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}

	return &v, nil
}

const findRentalsByRenterSQL = `
SELECT r.id, r.resource_id, p.name, r.start_date, r.end_date,
       r.status, r.total_price_cents, r.created_at
FROM rentals r
JOIN resources p ON p.id = r.resource_id
WHERE r.renter_id = $1
ORDER BY r.created_at DESC
`

func (s *RentalReadStore) FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*queries.RentalListItem, error) {
	rows, err := s.db.Query(ctx, findRentalsByRenterSQL, renterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals by renter", err)
	}
	defer rows.Close()

	return scanRentalListItems(rows)
}

const findRentalsByOwnerSQL = `
SELECT r.id, r.resource_id, p.name, r.start_date, r.end_date,
       r.status, r.total_price_cents, r.created_at
FROM rentals r
JOIN resources p ON p.id = r.resource_id
WHERE p.owner_id = $1
ORDER BY r.created_at DESC
`

func (s *RentalReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.RentalListItem, error) {
	rows, err := s.db.Query(ctx, findRentalsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals by owner", err)
	}
	defer rows.Close()

	return scanRentalListItems(rows)
}

// Indexed on (resource_id, start_date); only the candidate's resource
// is scanned, never the whole table.
const findUnavailableRangesSQL = `
SELECT start_date, end_date
FROM rentals
WHERE resource_id = $1
  AND status IN ('Requested', 'Approved', 'Active')
  AND end_date >= $2
ORDER BY start_date
`

func (s *RentalReadStore) FindUnavailableRanges(ctx context.Context, resourceID uuid.UUID, from time.Time) ([]*queries.UnavailableRange, error) {
	rows, err := s.db.Query(ctx, findUnavailableRangesSQL, resourceID, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find unavailable ranges", err)
	}
	defer rows.Close()

	var result []*queries.UnavailableRange
	for rows.Next() {
		var r queries.UnavailableRange
		if err := rows.Scan(&r.StartDate, &r.EndDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan unavailable range", err)
		}
		result = append(result, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate unavailable ranges", err)
	}

	return result, nil
}

type rentalListRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRentalListItems(rows rentalListRows) ([]*queries.RentalListItem, error) {
	var result []*queries.RentalListItem
	for rows.Next() {
		var item queries.RentalListItem
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName, &item.StartDate,
			&item.EndDate, &item.Status, &item.TotalPriceCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rentals", err)
	}

	return result, nil
}
