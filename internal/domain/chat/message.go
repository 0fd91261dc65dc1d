package chat

import (
	"strings"
	"time"

	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage   = errs.NewKind(errs.KindValidation, "message text cannot be empty")
	ErrMessageTooLong = errs.NewKind(errs.KindValidation, "message text exceeds maximum length")
)

const MaxMessageLength = 2000

type Message struct {
	id         uuid.UUID
	rentalID   uuid.UUID
	senderID   uuid.UUID
	receiverID uuid.UUID
	text       string
	createdAt  time.Time
}

func NewMessage(rentalID, senderID, receiverID uuid.UUID, text string, now time.Time) (*Message, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil, ErrEmptyMessage
	}
	if len(t) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	return &Message{
		id:         uuid.New(),
		rentalID:   rentalID,
		senderID:   senderID,
		receiverID: receiverID,
		text:       t,
		createdAt:  now,
	}, nil
}

func (m *Message) ID() uuid.UUID         { return m.id }
func (m *Message) RentalID() uuid.UUID   { return m.rentalID }
func (m *Message) SenderID() uuid.UUID   { return m.senderID }
func (m *Message) ReceiverID() uuid.UUID { return m.receiverID }
func (m *Message) Text() string          { return m.text }
func (m *Message) CreatedAt() time.Time  { return m.createdAt }
