package queries

import (
	"context"
	"time"

	"lendhub/internal/domain/chat"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRentalNotFound = errs.NewKind(errs.KindNotFound, "rental not found")

type RentalQueries interface {
	// GetByID is restricted to the rental's two parties.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*RentalView, error)
	// ListByRenter: items the actor has requested to borrow.
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*RentalListItem, error)
	// ListByOwner: incoming rentals on the actor's resources.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RentalListItem, error)
	// ListUnavailableRanges: active-status rentals that have not ended
	// yet. Read-only and idempotent; feeds availability calendars.
	ListUnavailableRanges(ctx context.Context, resourceID uuid.UUID) ([]*UnavailableRange, error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*RentalListItem, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*RentalListItem, error)
	FindUnavailableRanges(ctx context.Context, resourceID uuid.UUID, from time.Time) ([]*UnavailableRange, error)
}

type rentalQueriesImpl struct {
	store RentalReadStore
	clock clock.Clock
}

func NewRentalQueries(store RentalReadStore, clk clock.Clock) RentalQueries {
	return &rentalQueriesImpl{store: store, clock: clk}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*RentalView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}

	party := chat.Party{RenterID: view.RenterID, OwnerID: view.OwnerID}
	if err := chat.CanRead(party, actorID); err != nil {
		return nil, err
	}

	return view, nil
}

func (q *rentalQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*RentalListItem, error) {
	return q.store.FindByRenterID(ctx, renterID)
}

func (q *rentalQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RentalListItem, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}

func (q *rentalQueriesImpl) ListUnavailableRanges(ctx context.Context, resourceID uuid.UUID) ([]*UnavailableRange, error) {
	return q.store.FindUnavailableRanges(ctx, resourceID, clock.Today(q.clock))
}
