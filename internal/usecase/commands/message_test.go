//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/chat"
	"lendhub/internal/domain/rental"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/realtime"
	"lendhub/internal/usecase/commands"
	"lendhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageUseCase(uow *fakeUoW) (commands.MessageCommands, *fakePublisher) {
	pub := &fakePublisher{}
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	return commands.NewMessageUseCase(uow, pub, clk), pub
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("renter sends while approved", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusApproved
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, pub := newMessageUseCase(uow)

		view, err := uc.SendMessage(ctx, b.ID, b.RenterID, "when can I pick it up?")
		require.NoError(t, err)
		require.Len(t, uow.messages.created, 1)

		assert.Equal(t, b.RenterID, view.SenderID)
		assert.Equal(t, b.OwnerID, view.ReceiverID, "receiver is the other party")
		assert.Equal(t, "when can I pick it up?", view.Text)

		require.Len(t, pub.events, 1)
		assert.Equal(t, realtime.RentalChannel(b.ID), pub.events[0].channel)
		assert.Equal(t, "message_sent", pub.events[0].event.Type)
	})

	t.Run("owner replies while active", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusActive
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _ := newMessageUseCase(uow)

		view, err := uc.SendMessage(ctx, b.ID, b.OwnerID, "any time after five")
		require.NoError(t, err)
		assert.Equal(t, b.RenterID, view.ReceiverID)
	})

	t.Run("chat locked while requested", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, pub := newMessageUseCase(uow)

		_, err := uc.SendMessage(ctx, b.ID, b.RenterID, "hello?")
		assert.ErrorIs(t, err, chat.ErrChatLocked)
		assert.Empty(t, uow.messages.created)
		assert.Empty(t, pub.events, "nothing may be published for a rejected send")
	})

	t.Run("chat locked after completion", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusCompleted
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _ := newMessageUseCase(uow)

		_, err := uc.SendMessage(ctx, b.ID, b.OwnerID, "thanks again")
		assert.ErrorIs(t, err, chat.ErrChatLocked)
	})

	t.Run("stranger is not a participant", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusApproved
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _ := newMessageUseCase(uow)

		_, err := uc.SendMessage(ctx, b.ID, uuid.New(), "let me in")
		assert.ErrorIs(t, err, chat.ErrNotParticipant)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusApproved
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		uc, _ := newMessageUseCase(uow)

		_, err := uc.SendMessage(ctx, b.ID, b.RenterID, "   ")
		assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	})

	t.Run("rental not found", func(t *testing.T) {
		uow := newFakeUoW()
		uc, _ := newMessageUseCase(uow)

		_, err := uc.SendMessage(ctx, uuid.New(), uuid.New(), "anyone there?")
		assert.ErrorIs(t, err, commands.ErrRentalNotFound)
	})

	t.Run("publish failure does not fail the send", func(t *testing.T) {
		b := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.Status = rental.StatusApproved
		})
		uow := newFakeUoW()
		uow.reads.rental = b.BuildSnapshot()
		pub := &fakePublisher{err: assert.AnError}
		clk := clock.NewMockClock(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
		uc := commands.NewMessageUseCase(uow, pub, clk)

		view, err := uc.SendMessage(ctx, b.ID, b.RenterID, "still works")
		require.NoError(t, err)
		assert.NotNil(t, view)
		require.Len(t, uow.messages.created, 1)
	})
}
