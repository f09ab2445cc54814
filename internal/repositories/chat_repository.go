package repositories

import (
	"database/sql"
	"time"

	intconfig "fletapp/internal/config"
	"fletapp/internal/domain/models"
)

type ChatRepository struct {
	DB *sql.DB
}

func (r ChatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert appends one message and returns it with id and timestamp filled.
func (r ChatRepository) Insert(tripID int64, senderID, content string) (models.ChatMessage, error) {
	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO chat_messages (trip_id, sender_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`, tripID, senderID, content, now)
	if err != nil {
		return models.ChatMessage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ChatMessage{}, err
	}
	return models.ChatMessage{
		ID:        id,
		TripID:    tripID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: now,
	}, nil
}

// ListByTrip returns the conversation oldest-first.
func (r ChatRepository) ListByTrip(tripID int64) ([]models.ChatMessage, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_id, sender_id, content, created_at
		FROM chat_messages
		WHERE trip_id = ?
		ORDER BY created_at ASC, id ASC
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.TripID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
