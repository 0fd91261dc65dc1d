package commands

import (
	"context"
	"log/slog"

	"lendhub/internal/domain/chat"
	"lendhub/internal/domain/rental"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/realtime"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageCommands interface {
	SendMessage(ctx context.Context, rentalID, senderID uuid.UUID, text string) (*queries.MessageView, error)
}

type messageUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher realtime.Publisher
	clock     clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, publisher realtime.Publisher, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

// SendMessage checks the chat gate against status read under a row lock
// in the same transaction that inserts the message, so a concurrent
// cancel cannot slip a message into a locked conversation. The send
// event is published only after commit; delivery itself is someone
// else's job.
func (uc *messageUseCaseImpl) SendMessage(ctx context.Context, rentalID, senderID uuid.UUID, text string) (*queries.MessageView, error) {
	var msg *chat.Message

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RentalByIDForUpdate(ctx, rentalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}

		party := chat.Party{RenterID: snap.RenterID, OwnerID: snap.OwnerID}
		if derr = chat.CanSend(party, senderID, rental.Status(snap.Status)); derr != nil {
			return derr
		}

		msg, derr = chat.NewMessage(rentalID, senderID, party.ReceiverOf(senderID), text, uc.clock.Now())
		if derr != nil {
			return derr
		}

		if _, derr = tx.Messages().Create(ctx, tx.DB(), msg); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := &queries.MessageView{
		ID:         msg.ID(),
		RentalID:   msg.RentalID(),
		SenderID:   msg.SenderID(),
		ReceiverID: msg.ReceiverID(),
		Text:       msg.Text(),
		CreatedAt:  msg.CreatedAt(),
	}

	if pubErr := uc.publisher.Publish(ctx, realtime.RentalChannel(rentalID), realtime.MessageSentEvent(view)); pubErr != nil {
		// The message is committed; fan-out failure must not undo it.
		slog.Warn("failed to publish message event", "rental_id", rentalID, "error", pubErr.Error())
	}

	return view, nil
}
