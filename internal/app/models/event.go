package models

import "time"

// Event is a scheduled alumni event created by a user.
type Event struct {
	ID          int64     `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Schedule    time.Time `json:"schedule"`
	Banner      string    `json:"banner,omitempty"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
