package queries

import "context"

// ReadTx exposes the read stores bound to one read-only transaction so
// multi-table reads observe a single snapshot.
type ReadTx interface {
	Rentals() RentalReadStore
	Messages() MessageReadStore
}

type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}
