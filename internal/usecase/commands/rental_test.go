//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/rental"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRentalUseCase(uow *fakeUoW) (commands.RentalCommands, *fakeRentalReadStore, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	reads := &fakeRentalReadStore{views: map[uuid.UUID]*queries.RentalView{}}
	uc := commands.NewRentalUseCase(uow, reads, rental.NewPerDayPriceCalculator(), clk)
	return uc, reads, clk
}

func TestRequestRental(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()

	t.Run("success", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		view, err := uc.RequestRental(ctx, b.ResourceID, renterID, "2025-06-10", "2025-06-12")
		require.NoError(t, err)
		require.Len(t, uow.rentals.created, 1)

		created := uow.rentals.created[0]
		assert.Equal(t, rental.StatusRequested, created.Status())
		assert.Equal(t, b.ResourceID, created.ResourceID())
		assert.Equal(t, renterID, created.RenterID())
		assert.Equal(t, int64(2*b.DailyRateCents), created.TotalPrice().Cents())
		assert.Equal(t, created.ID(), view.ID)
	})

	t.Run("resource not found", func(t *testing.T) {
		uow := newFakeUoW()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.RequestRental(ctx, uuid.New(), renterID, "2025-06-10", "2025-06-12")
		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("resource unavailable", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		snap := b.BuildResourceSnapshot()
		snap.IsAvailable = false
		uow.reads.resource = snap
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.RequestRental(ctx, b.ResourceID, renterID, "2025-06-10", "2025-06-12")
		assert.ErrorIs(t, err, commands.ErrResourceUnavailable)
	})

	t.Run("owner cannot rent own resource", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.RequestRental(ctx, b.ResourceID, b.OwnerID, "2025-06-10", "2025-06-12")
		assert.ErrorIs(t, err, commands.ErrSelfBooking)
	})

	t.Run("request starting on an existing end date conflicts", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uow.reads.calendar = []rental.CalendarEntry{b.BuildCalendarEntry()}
		uc, _, _ := newRentalUseCase(uow)

		// Existing booking ends 2025-06-12; closed intervals collide on the shared day.
		_, err := uc.RequestRental(ctx, b.ResourceID, renterID, "2025-06-12", "2025-06-14")
		assert.ErrorIs(t, err, commands.ErrDateConflict)
		assert.Empty(t, uow.rentals.created)
	})

	t.Run("adjacent disjoint request passes", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uow.reads.calendar = []rental.CalendarEntry{b.BuildCalendarEntry()}
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.RequestRental(ctx, b.ResourceID, renterID, "2025-06-13", "2025-06-15")
		assert.NoError(t, err)
	})

	t.Run("exclusion constraint surfaces as date conflict", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uow.rentals.createErr = infra.WrapRepoErr("insert rental", nil, infra.KindConflict)
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.RequestRental(ctx, b.ResourceID, renterID, "2025-06-10", "2025-06-12")
		assert.ErrorIs(t, err, commands.ErrDateConflict)
	})

	t.Run("date validation", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		cases := []struct {
			name  string
			start string
			end   string
			errIs error
		}{
			{"missing start", "", "2025-06-12", commands.ErrMissingField},
			{"garbage date", "June tenth", "2025-06-12", commands.ErrInvalidDate},
			{"start in past", "2025-05-20", "2025-06-12", rental.ErrStartDateInPast},
			{"end equals start", "2025-06-10", "2025-06-10", rental.ErrEndNotAfterStart},
			{"end before start", "2025-06-12", "2025-06-10", rental.ErrEndNotAfterStart},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.RequestRental(ctx, b.ResourceID, renterID, tc.start, tc.end)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("rfc3339 timestamps are accepted and truncated", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.resource = b.BuildResourceSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.RequestRental(ctx, b.ResourceID, renterID, "2025-06-10T15:04:05Z", "2025-06-12T01:00:00Z")
		require.NoError(t, err)
		require.Len(t, uow.rentals.created, 1)
		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), uow.rentals.created[0].DateRange().Start())
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("owner approves a requested rental", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		view, err := uc.UpdateStatus(ctx, b.ID, b.OwnerID, rental.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, 1, uow.rentals.statusCalls)
		assert.Equal(t, rental.StatusRequested, uow.rentals.statusFrom)
		assert.Equal(t, rental.StatusApproved, uow.rentals.statusTo)
		assert.Equal(t, b.ID, view.ID)
	})

	t.Run("renter cannot drive the state machine", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.UpdateStatus(ctx, b.ID, b.RenterID, rental.StatusApproved)
		assert.ErrorIs(t, err, commands.ErrNotResourceOwner)
		assert.Zero(t, uow.rentals.statusCalls)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.UpdateStatus(ctx, b.ID, b.OwnerID, rental.StatusCompleted)
		assert.ErrorIs(t, err, rental.ErrInvalidTransition)
	})

	t.Run("terminal rental rejects transitions", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusCancelled
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.UpdateStatus(ctx, b.ID, b.OwnerID, rental.StatusApproved)
		assert.ErrorIs(t, err, rental.ErrInvalidTransition)
	})

	t.Run("unknown target status", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.UpdateStatus(ctx, b.ID, b.OwnerID, rental.Status("Pending"))
		assert.ErrorIs(t, err, rental.ErrInvalidTransition)
	})

	t.Run("rental not found", func(t *testing.T) {
		uow := newFakeUoW()
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.UpdateStatus(ctx, uuid.New(), uuid.New(), rental.StatusApproved)
		assert.ErrorIs(t, err, commands.ErrRentalNotFound)
	})

	t.Run("lost compare-and-swap surfaces as conflict", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uow.rentals.updateErr = infra.WrapRepoErr("rental status changed concurrently", nil, infra.KindConflict)
		uc, _, _ := newRentalUseCase(uow)

		_, err := uc.UpdateStatus(ctx, b.ID, b.OwnerID, rental.StatusApproved)
		assert.ErrorIs(t, err, commands.ErrConcurrentUpdate)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})
}
