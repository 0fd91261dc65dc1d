package shared

import (
	"context"

	"lendhub/internal/domain/chat"
	"lendhub/internal/domain/rental"
	"lendhub/internal/domain/review"
	"lendhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Messages() MessageRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the freshly-read snapshots the gates and the state
// machine validate against. Inside a transaction the ForUpdate variants
// take row locks so concurrent writers serialize.
type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	RentalByIDForUpdate(ctx context.Context, id uuid.UUID) (*RentalSnapshot, error)
	// ActiveCalendarForUpdate locks and returns the calendar entries of
	// every active-status rental on the resource.
	ActiveCalendarForUpdate(ctx context.Context, resourceID uuid.UUID) ([]rental.CalendarEntry, error)
}

type RentalRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *rental.Rental) (uuid.UUID, error)
	// UpdateStatus compare-and-swaps on the previous status so two
	// concurrent transitions cannot both succeed.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to rental.Status) error
	SetReviewed(ctx context.Context, dbtx db.DBTX, id, reviewID uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, m *chat.Message) (uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error)
}
