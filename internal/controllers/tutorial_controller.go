package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"floorplan-web/internal/models"
	"floorplan-web/internal/service"
)

type TutorialController struct {
	tutorialService service.TutorialService
}

func NewTutorialController(tutorialService service.TutorialService) *TutorialController {
	return &TutorialController{tutorialService: tutorialService}
}

// Status handles GET and POST /api/tutorial-status
func (tc *TutorialController) Status(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		successResponse(c, http.StatusOK, "Tutorial status retrieved", tc.tutorialService.Status())
		return
	}

	// An empty body is an update with nothing in it
	var req models.TutorialStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		validationFailed(c, "Invalid request body")
		return
	}

	successResponse(c, http.StatusOK, "Tutorial status updated", tc.tutorialService.Update(&req))
}
