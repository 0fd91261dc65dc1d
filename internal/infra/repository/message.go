package repository

import (
	"context"

	"lendhub/internal/domain/chat"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"

	"github.com/google/uuid"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

const insertMessageSQL = `
INSERT INTO messages (id, rental_id, sender_id, receiver_id, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *MessageRepository) Create(ctx context.Context, dbtx db.DBTX, m *chat.Message) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertMessageSQL,
		m.ID(),
		m.RentalID(),
		m.SenderID(),
		m.ReceiverID(),
		m.Text(),
		m.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create message", err)
	}

	return id, nil
}
