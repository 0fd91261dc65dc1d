package readstore

import (
	"context"

	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

const findResourceByIDSQL = `
SELECT id, owner_id, name, daily_rate_cents, is_available
FROM resources
WHERE id = $1
`

func (s *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	var snap shared.ResourceSnapshot
	err := s.db.QueryRow(ctx, findResourceByIDSQL, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.DailyRateCents, &snap.IsAvailable,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	return &snap, nil
}
