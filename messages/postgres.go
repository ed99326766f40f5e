package messages

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/chatline-go/apperror"
)

// PostgresMessageStore implements MessageStore on a pgx connection pool.
type PostgresMessageStore struct {
	db *pgxpool.Pool
}

// NewPostgresMessageStore creates a PostgresMessageStore.
func NewPostgresMessageStore(db *pgxpool.Pool) *PostgresMessageStore {
	return &PostgresMessageStore{db: db}
}

func (s *PostgresMessageStore) CreateMessage(ctx context.Context, msg *Message) error {
	query := `INSERT INTO messages (id, sender_id, receiver_id, text, image)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`
	err := s.db.QueryRow(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Text, msg.Image,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return apperror.NewDatabaseError("failed to create message", err)
	}
	return nil
}

func (s *PostgresMessageStore) GetConversation(ctx context.Context, a, b uuid.UUID) ([]Message, error) {
	query := `SELECT id, sender_id, receiver_id, text, image, created_at
	          FROM messages
	          WHERE (sender_id = $1 AND receiver_id = $2)
	             OR (sender_id = $2 AND receiver_id = $1)
	          ORDER BY created_at ASC`
	rows, err := s.db.Query(ctx, query, a, b)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load conversation", err)
	}
	defer rows.Close()

	msgs := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &m.Image, &m.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan message", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read conversation", err)
	}
	return msgs, nil
}
