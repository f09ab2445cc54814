package models

import "time"

// ChatMessage is one line of a trip's conversation. Append-only: messages
// are never edited or deleted.
type ChatMessage struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
