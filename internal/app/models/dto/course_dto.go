package dto

// CreateCourseRequest adds a course; the legacy field name is "course".
type CreateCourseRequest struct {
	Course      string `json:"course" binding:"required"`
	Description string `json:"description"`
}

// UpdateCourseRequest renames a course by id
type UpdateCourseRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Course string `json:"course" binding:"required"`
}
