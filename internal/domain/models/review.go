package models

import "time"

// Review is a customer's rating of a driver for one trip. Immutable once
// created; at most one per (trip, reviewer) pair.
type Review struct {
	ID         int64     `json:"id"`
	TripID     int64     `json:"trip_id"`
	ReviewerID string    `json:"reviewer_id"`
	DriverID   string    `json:"driver_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
