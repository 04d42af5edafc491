package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"floorplan-web/internal/models"
	"floorplan-web/internal/service"
	"floorplan-web/internal/validation"
)

type FloorPlanController struct {
	floorPlanService service.FloorPlanService
	validator        *validation.Validator
	logger           *zap.Logger
}

func NewFloorPlanController(floorPlanService service.FloorPlanService, validator *validation.Validator, logger *zap.Logger) *FloorPlanController {
	return &FloorPlanController{
		floorPlanService: floorPlanService,
		validator:        validator,
		logger:           logger,
	}
}

// Generate handles POST /api/generate-floorplan
func (fc *FloorPlanController) Generate(c *gin.Context) {
	var req models.FloorPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	if err := fc.validator.Struct(&req); err != nil {
		if verr, ok := validation.AsError(err); ok {
			validationFailed(c, verr.First())
			return
		}
		fc.logger.Error("floor plan validation error", zap.Error(err))
		internalError(c, "Failed to generate floor plan")
		return
	}

	response, err := fc.floorPlanService.Generate(c.Request.Context(), &req)
	if errors.Is(err, context.Canceled) {
		clientGone(c, fc.logger)
		return
	}
	if err != nil {
		fc.logger.Error("floor plan generation error", zap.Error(err))
		internalError(c, "Failed to generate floor plan")
		return
	}

	successResponse(c, http.StatusOK, "Floor plan generated successfully", response)
}
