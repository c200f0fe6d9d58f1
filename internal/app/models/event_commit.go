package models

import "time"

// EventCommit records a user's participation in an event. The (event, user)
// pair is unique; repeated participation requests are idempotent.
type EventCommit struct {
	ID        int64     `json:"_id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
