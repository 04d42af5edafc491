package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"floorplan-web/internal/middleware"
	"floorplan-web/internal/models"
)

func successResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func errorResponse(c *gin.Context, status int, message, errMsg string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Message: message,
		Error:   errMsg,
	})
}

func validationFailed(c *gin.Context, errMsg string) {
	errorResponse(c, http.StatusBadRequest, "Validation failed", errMsg)
}

// clientGone ends a request whose caller disconnected. Nothing is written.
func clientGone(c *gin.Context, logger *zap.Logger) {
	logger.Info("client went away before the response was ready",
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	c.Abort()
}

func internalError(c *gin.Context, errMsg string) {
	errorResponse(c, http.StatusInternalServerError, "Internal server error", errMsg)
}
