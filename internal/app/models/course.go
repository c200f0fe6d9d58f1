package models

import "time"

// Course offered by the institution, referenced by alumnus profiles.
type Course struct {
	ID          int64     `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
