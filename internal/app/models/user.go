package models

import "time"

// User is a login credential record. Alumnus-role users reference their
// directory profile through AlumnusID.
type User struct {
	ID        int64     `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"type"`
	AlumnusID *int64    `json:"alumnus_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
