package models

// AuthResponse represents the placeholder identity returned by the login stub
type AuthResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"` // Placeholder, no token is issued
}

// RegisterResponse represents the fabricated account returned by the register stub
type RegisterResponse struct {
	UserID   string `json:"userId"` // "user_" + unix millis
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
