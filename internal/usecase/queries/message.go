package queries

import (
	"context"

	"lendhub/internal/domain/chat"
	"lendhub/internal/domain/rental"
	"lendhub/internal/infra"

	"github.com/google/uuid"
)

type MessageQueries interface {
	// ListByRental returns the conversation for either party. History
	// stays visible while the chat is locked; the ChatLocked flag is a
	// display hint only, send-time enforcement happens in commands.
	ListByRental(ctx context.Context, actorID, rentalID uuid.UUID) (*ConversationView, error)
}

type MessageReadStore interface {
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*MessageView, error)
}

type messageQueriesImpl struct {
	runner ReadOnlyRunner
}

func NewMessageQueries(runner ReadOnlyRunner) MessageQueries {
	return &messageQueriesImpl{runner: runner}
}

func (q *messageQueriesImpl) ListByRental(ctx context.Context, actorID, rentalID uuid.UUID) (*ConversationView, error) {
	var view *ConversationView
	// Rental gate and message list read from the same snapshot so a
	// concurrent status change cannot skew the ChatLocked flag.
	err := q.runner.WithinReadOnly(ctx, func(ctx context.Context, tx ReadTx) error {
		rentalView, err := tx.Rentals().FindByID(ctx, rentalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return err
		}

		party := chat.Party{RenterID: rentalView.RenterID, OwnerID: rentalView.OwnerID}
		if err := chat.CanRead(party, actorID); err != nil {
			return err
		}

		messages, err := tx.Messages().FindByRentalID(ctx, rentalID)
		if err != nil {
			return err
		}

		view = &ConversationView{
			Messages:   messages,
			ChatLocked: chat.Locked(rental.Status(rentalView.Status)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
