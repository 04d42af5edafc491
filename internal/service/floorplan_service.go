package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"floorplan-web/internal/models"
)

// FloorPlanService defines the interface for floor plan generation.
// Generation is simulated: nothing is computed, rendered or stored.
type FloorPlanService interface {
	Generate(ctx context.Context, req *models.FloorPlanRequest) (*models.FloorPlanResponse, error)
}

type floorPlanService struct {
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewFloorPlanService creates a generator that waits delay before answering
func NewFloorPlanService(delay time.Duration, logger *zap.Logger) FloorPlanService {
	return &floorPlanService{
		delay:  delay,
		logger: logger,
		now:    time.Now,
	}
}

// Generate waits the simulated processing time and fabricates a result that echoes the
// request. It returns ctx.Err() if the caller goes away first.
func (s *floorPlanService) Generate(ctx context.Context, req *models.FloorPlanRequest) (*models.FloorPlanResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("generate floor plan: nil request")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generate floor plan: %w", ctx.Err())
		case <-timer.C:
		}
	}

	now := s.now().UTC()
	stamp := now.UnixMilli()

	resp := &models.FloorPlanResponse{
		FloorPlanID: fmt.Sprintf("fp_%d", stamp),
		ImageURL:    fmt.Sprintf("/floor-plans/generated_%d.png", stamp),
		Parameters:  models.ParametersOf(req),
		GeneratedAt: now,
	}

	s.logger.Info("floor plan generated",
		zap.String("floor_plan_id", resp.FloorPlanID),
		zap.Float64("length", req.Length.Float64()),
		zap.Float64("width", req.Width.Float64()),
		zap.Int("bedrooms", req.Bedrooms.Int()),
		zap.Bool("parking", req.HasParking),
	)

	return resp, nil
}
