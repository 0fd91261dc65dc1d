package response

import (
	"time"

	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	RentalID   uuid.UUID `json:"rentalId"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ConversationResponse struct {
	Messages   []*MessageResponse `json:"messages"`
	ChatLocked bool               `json:"chatLocked"`
}

func FromMessageView(v *queries.MessageView) *MessageResponse {
	return &MessageResponse{
		ID:         v.ID,
		RentalID:   v.RentalID,
		SenderID:   v.SenderID,
		ReceiverID: v.ReceiverID,
		Text:       v.Text,
		CreatedAt:  v.CreatedAt,
	}
}

func FromConversationView(v *queries.ConversationView) *ConversationResponse {
	msgs := make([]*MessageResponse, len(v.Messages))
	for i, m := range v.Messages {
		msgs[i] = FromMessageView(m)
	}
	return &ConversationResponse{
		Messages:   msgs,
		ChatLocked: v.ChatLocked,
	}
}
