package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Publisher is the injected collaborator for real-time fan-out. The
// core only decides that an event may be published; transports and
// delivery guarantees live behind this interface.
type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// RentalChannel keys the conversation stream by rental id.
func RentalChannel(rentalID uuid.UUID) string {
	return fmt.Sprintf("rental:%s", rentalID)
}

func MessageSentEvent(payload any) Event {
	return Event{Type: "message_sent", Payload: payload}
}

// NopPublisher drops events; used where no transport is wired.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (p *NopPublisher) Publish(_ context.Context, _ string, _ Event) error {
	return nil
}
