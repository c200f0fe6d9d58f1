package dto

import "time"

// CreateAlumnusRequest adds a directory profile (admin action, created
// verified).
type CreateAlumnusRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Gender      string `json:"gender"`
	Batch       string `json:"batch"`
	CourseID    *int64 `json:"course_id"`
	ConnectedTo string `json:"connected_to"`
}

// UpdateAlumnusRequest edits a directory profile
type UpdateAlumnusRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Gender      string `json:"gender"`
	Batch       string `json:"batch"`
	CourseID    *int64 `json:"course_id"`
	ConnectedTo string `json:"connected_to"`
	Status      *int   `json:"status"`
}

// SetAlumnusStatusRequest toggles the verified flag; legacy field names.
type SetAlumnusStatusRequest struct {
	AlumnusID int64 `json:"aid" binding:"required"`
	Status    int   `json:"status"`
}

// AlumnusListItem is one row of /alumni_list: the bio left-joined with its
// course. Course stays empty when the reference does not resolve.
type AlumnusListItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender,omitempty"`
	Batch       string    `json:"batch,omitempty"`
	CourseID    *int64    `json:"course_id,omitempty"`
	Email       string    `json:"email"`
	ConnectedTo string    `json:"connected_to,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Status      int       `json:"status"`
	DateCreated time.Time `json:"date_created"`
	Course      *string   `json:"course,omitempty"`
}

// UpdateAccountRequest is the self-service profile update submitted as a
// multipart form (the avatar travels in the "image" file field).
type UpdateAccountRequest struct {
	AlumnusID   int64  `form:"alumnus_id" binding:"required"`
	UserID      int64  `form:"user_id" binding:"required"`
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	Gender      string `form:"gender"`
	Batch       string `form:"batch"`
	ConnectedTo string `form:"connected_to"`
	CourseID    *int64 `form:"course_id"`
	Password    string `form:"password"`
}
