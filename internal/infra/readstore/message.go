package readstore

import (
	"context"

	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

const findMessagesByRentalSQL = `
SELECT id, rental_id, sender_id, receiver_id, text, created_at
FROM messages
WHERE rental_id = $1
ORDER BY created_at ASC
`

func (s *MessageReadStore) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*queries.MessageView, error) {
	rows, err := s.db.Query(ctx, findMessagesByRentalSQL, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find messages by rental", err)
	}
	defer rows.Close()

	var result []*queries.MessageView
	for rows.Next() {
		var m queries.MessageView
		if err := rows.Scan(&m.ID, &m.RentalID, &m.SenderID, &m.ReceiverID, &m.Text, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message", err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate messages", err)
	}

	return result, nil
}
