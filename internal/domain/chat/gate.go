package chat

import (
	"lendhub/internal/domain/rental"
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotParticipant = errs.NewKind(errs.KindAuthorization, "actor is not a party to this rental")
	ErrChatLocked     = errs.NewKind(errs.KindConflict, "chat is locked for the rental's current status")
)

// Locked reports whether messaging is disabled for the status. Chat
// opens on approval and closes again once the rental ends. The server
// is the sole source of truth here; any client-side copy is a display
// cache only.
func Locked(status rental.Status) bool {
	switch status {
	case rental.StatusRequested, rental.StatusCompleted, rental.StatusCancelled:
		return true
	default:
		return false
	}
}

// Party are the two users allowed in a rental's conversation.
type Party struct {
	RenterID uuid.UUID
	OwnerID  uuid.UUID
}

func (p Party) Includes(actorID uuid.UUID) bool {
	return actorID == p.RenterID || actorID == p.OwnerID
}

// ReceiverOf resolves the other side of the conversation.
func (p Party) ReceiverOf(senderID uuid.UUID) uuid.UUID {
	if senderID == p.RenterID {
		return p.OwnerID
	}
	return p.RenterID
}

// CanRead allows either party to see the history, locked or not.
func CanRead(p Party, actorID uuid.UUID) error {
	if !p.Includes(actorID) {
		return ErrNotParticipant
	}
	return nil
}

// CanSend must be evaluated against freshly-read status at send time;
// status may have changed since the caller last looked.
func CanSend(p Party, actorID uuid.UUID, status rental.Status) error {
	if !p.Includes(actorID) {
		return ErrNotParticipant
	}
	if Locked(status) {
		return ErrChatLocked
	}
	return nil
}
