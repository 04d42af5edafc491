package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"floorplan-web/internal/models"
	"floorplan-web/internal/service"
	"floorplan-web/internal/validation"
)

type AuthController struct {
	authService service.AuthService
	validator   *validation.Validator
	logger      *zap.Logger
}

func NewAuthController(authService service.AuthService, validator *validation.Validator, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		validator:   validator,
		logger:      logger,
	}
}

// Register handles POST /api/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	if err := ac.validator.Struct(&req); err != nil {
		if verr, ok := validation.AsError(err); ok {
			validationFailed(c, verr.First())
			return
		}
		ac.logger.Error("registration validation error", zap.Error(err))
		internalError(c, "Failed to process registration")
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		ac.logger.Error("registration error", zap.Error(err))
		internalError(c, "Failed to process registration")
		return
	}

	successResponse(c, http.StatusCreated, "Registration successful", response)
}

// Login handles POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	if err := ac.validator.Struct(&req); err != nil {
		if verr, ok := validation.AsError(err); ok {
			validationFailed(c, verr.First())
			return
		}
		ac.logger.Error("login validation error", zap.Error(err))
		internalError(c, "Failed to process login")
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		ac.logger.Error("login error", zap.Error(err))
		internalError(c, "Failed to process login")
		return
	}

	successResponse(c, http.StatusOK, "Login successful", response)
}
