package models

import "time"

// Career is a job posting shared with the alumni network.
type Career struct {
	ID          int64     `json:"_id"`
	Company     string    `json:"company"`
	JobTitle    string    `json:"job_title"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	UserID      *int64    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
