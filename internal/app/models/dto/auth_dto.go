package dto

// LoginRequest is the credential payload for /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse mirrors the legacy login payload consumed by the frontend.
// The token also travels as a cookie; alumnus accounts include their linked
// bio id.
type LoginResponse struct {
	LoginStatus bool   `json:"loginStatus"`
	UserType    string `json:"userType,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	UserName    string `json:"userName,omitempty"`
	AlumnusID   *int64 `json:"alumnus_id,omitempty"`
	Token       string `json:"token,omitempty"`
	Error       string `json:"Error,omitempty"`
}

// SignupRequest registers an alumnus or generic user
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
	CourseID *int64 `json:"course_id"`
}

// SignupResponse mirrors the legacy signup payload. A duplicate email is
// reported by echoing the existing email with no signup status.
type SignupResponse struct {
	Message      string `json:"message,omitempty"`
	UserID       int64  `json:"userId,omitempty"`
	SignupStatus bool   `json:"signupStatus,omitempty"`
	Email        string `json:"email,omitempty"`
}

// AdminRegisterRequest registers an admin-role user
type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminRegisterResponse mirrors the legacy admin registration payload
type AdminRegisterResponse struct {
	Message        string `json:"message,omitempty"`
	UserID         int64  `json:"userId,omitempty"`
	RegisterStatus bool   `json:"registerStatus"`
	Error          string `json:"error,omitempty"`
}
