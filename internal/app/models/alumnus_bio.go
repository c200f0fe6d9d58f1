package models

import "time"

// AlumnusBio is the directory profile of a graduate, distinct from the
// login record. CourseID may dangle after a course is removed; list queries
// left-join and tolerate the absence.
type AlumnusBio struct {
	ID          int64     `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CourseID    *int64    `json:"course_id,omitempty"`
	Batch       string    `json:"batch,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	ConnectedTo string    `json:"connected_to,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
