package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"floorplan-web/internal/models"
)

func abortWithError(c *gin.Context, status int, message, errMsg string) {
	c.AbortWithStatusJSON(status, models.APIResponse{
		Success: false,
		Message: message,
		Error:   errMsg,
	})
}

// AllowMethods rejects every method not listed with a 405 envelope, e.g.
// "Only POST requests are accepted" or "Only GET and POST requests are accepted".
func AllowMethods(methods ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(methods))
	for _, m := range methods {
		allowed[m] = true
	}
	allowHeader := strings.Join(methods, ", ")
	errMsg := "Only " + joinMethods(methods) + " requests are accepted"

	return func(c *gin.Context) {
		if allowed[c.Request.Method] {
			c.Next()
			return
		}
		c.Header("Allow", allowHeader)
		abortWithError(c, http.StatusMethodNotAllowed, "Method not allowed", errMsg)
	}
}

func joinMethods(methods []string) string {
	switch len(methods) {
	case 0:
		return ""
	case 1:
		return methods[0]
	default:
		return strings.Join(methods[:len(methods)-1], ", ") + " and " + methods[len(methods)-1]
	}
}
