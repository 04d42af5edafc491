package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"floorplan-web/internal/models"
)

const (
	placeholderUserID = "user_123"
	placeholderToken  = "jwt_token_placeholder"
	defaultRole       = "student"
)

// AuthService defines the interface for the authentication stubs.
// Neither method looks anything up, hashes anything or issues a real token.
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(logger *zap.Logger) AuthService {
	return &authService{
		logger: logger,
		now:    time.Now,
	}
}

// Register fabricates an account for an already validated request
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("register: nil request")
	}

	role := req.Role
	if role == "" {
		role = defaultRole
	}

	s.logger.Info("registration accepted", zap.String("email", req.Email), zap.String("role", role))

	return &models.RegisterResponse{
		UserID:   fmt.Sprintf("user_%d", s.now().UnixMilli()),
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
	}, nil
}

// Login returns the placeholder identity for any syntactically valid pair
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("login: nil request")
	}

	s.logger.Info("login accepted", zap.String("email", req.Email))

	return &models.AuthResponse{
		UserID: placeholderUserID,
		Email:  req.Email,
		Token:  placeholderToken,
	}, nil
}
