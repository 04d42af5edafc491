package models

// RegisterRequest represents the request body for POST /api/register.
// Fields are ordered so that a password mismatch is reported before a malformed email.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Email           string `json:"email" validate:"required,emailshape"`
	Role            string `json:"role,omitempty"`
}

func (r RegisterRequest) ValidationMessage(field, tag string) string {
	switch tag {
	case "required":
		return "All required fields must be provided"
	case "eqfield":
		return "Passwords do not match"
	case "emailshape":
		return "Invalid email format"
	}
	return ""
}

// LoginRequest represents the request body for POST /api/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) ValidationMessage(field, tag string) string {
	switch tag {
	case "required":
		return "Email and password are required"
	case "emailshape":
		return "Invalid email format"
	}
	return ""
}

// RegisterForm is the /register page form. It is stricter than the API body: the page
// also enforces a minimum name and password length.
type RegisterForm struct {
	FullName        string `form:"fullName" validate:"required,min=2"`
	Email           string `form:"email" validate:"required,emailshape"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `form:"role" validate:"omitempty,oneof=student architect developer other"`
}

var registerFormMessages = map[string]map[string]string{
	"fullName":        {"required": "Full name is required", "min": "Full name must be at least 2 characters"},
	"email":           {"required": "Email is required", "emailshape": "Please enter a valid email address"},
	"password":        {"required": "Password is required", "min": "Password must be at least 6 characters"},
	"confirmPassword": {"required": "Please confirm your password", "eqfield": "Passwords do not match"},
	"role":            {"oneof": "Please choose a valid role"},
}

func (f RegisterForm) ValidationMessage(field, tag string) string {
	return registerFormMessages[field][tag]
}

// Request converts the form into the API body shape.
func (f RegisterForm) Request() *RegisterRequest {
	return &RegisterRequest{
		FullName:        f.FullName,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		Email:           f.Email,
		Role:            f.Role,
	}
}

// LoginForm is the /login page form
type LoginForm struct {
	Email    string `form:"email" validate:"required,emailshape"`
	Password string `form:"password" validate:"required"`
}

var loginFormMessages = map[string]map[string]string{
	"email":    {"required": "Email is required", "emailshape": "Please enter a valid email address"},
	"password": {"required": "Password is required"},
}

func (f LoginForm) ValidationMessage(field, tag string) string {
	return loginFormMessages[field][tag]
}

func (f LoginForm) Request() *LoginRequest {
	return &LoginRequest{Email: f.Email, Password: f.Password}
}
