package dto

// UpdateUserRequest is the admin-side user edit. A non-empty password is
// re-hashed; empty keeps the current one.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Role     string `json:"type" binding:"required"`
	Password string `json:"password"`
}
