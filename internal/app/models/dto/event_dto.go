package dto

import "time"

// CreateEventRequest adds a new event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Schedule    time.Time `json:"schedule" binding:"required"`
	UserID      int64     `json:"user_id" binding:"required"`
}

// UpdateEventRequest partially updates an event by id
type UpdateEventRequest struct {
	ID          int64      `json:"id" binding:"required"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Schedule    *time.Time `json:"schedule"`
	UserID      *int64     `json:"user_id"`
}

// EventListItem is one row of the events listing with its participation
// count folded in by the list aggregation.
type EventListItem struct {
	ID           int64     `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Schedule     time.Time `json:"schedule"`
	Banner       string    `json:"banner,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	CommitsCount int64     `json:"commits_count"`
}

// ParticipateRequest records event participation for a user
type ParticipateRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
	UserID  int64 `json:"user_id" binding:"required"`
}

// EventCommitResponse reports whether a user already participates
type EventCommitResponse struct {
	EventCommit bool `json:"eventCommit"`
}
