package dto

// LoginRequest carries admin API credentials. UserID is the chat user id of an admin.
type LoginRequest struct {
	UserID   string `json:"userID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the generic error body of the admin API.
type ErrorResponse struct {
	Error string `json:"error"`
}
