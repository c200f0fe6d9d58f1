package dto

import "time"

// CreateJobRequest posts a new job
type CreateJobRequest struct {
	Company     string `json:"company" binding:"required"`
	JobTitle    string `json:"job_title" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description" binding:"required"`
	UserID      *int64 `json:"user_id"`
}

// UpdateJobRequest edits an existing job by id
type UpdateJobRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Company     string `json:"company" binding:"required"`
	JobTitle    string `json:"job_title" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description" binding:"required"`
}

// CreateJobResponse acknowledges the posting; notification delivery happens
// asynchronously and never blocks this response.
type CreateJobResponse struct {
	Message string `json:"message"`
	JobID   int64  `json:"jobId"`
}

// PostedBy identifies the user who posted a job
type PostedBy struct {
	ID   *int64 `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
}

// JobListItem is one row of /job_list: the posting joined with its poster.
type JobListItem struct {
	ID          int64     `json:"_id"`
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	PostedBy    PostedBy  `json:"postedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobItem is one row of the legacy /jobs listing.
type JobItem struct {
	ID          int64     `json:"id"`
	Company     string    `json:"company"`
	JobTitle    string    `json:"job_title"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	UserID      *int64    `json:"user_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
