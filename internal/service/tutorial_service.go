package service

import (
	"time"

	"floorplan-web/internal/models"
)

// TutorialService reports and accepts tutorial progress without storing it
type TutorialService interface {
	Status() *models.TutorialStatus
	Update(req *models.TutorialStatusRequest) *models.TutorialStatusUpdate
}

type tutorialService struct {
	now func() time.Time
}

func NewTutorialService() TutorialService {
	return &tutorialService{now: time.Now}
}

// Status always reports a fresh, not completed tutorial
func (s *tutorialService) Status() *models.TutorialStatus {
	return &models.TutorialStatus{
		Completed:   false,
		CurrentStep: 1,
		LastVisited: s.now().UTC(),
	}
}

// Update echoes what it was given
func (s *tutorialService) Update(req *models.TutorialStatusRequest) *models.TutorialStatusUpdate {
	update := &models.TutorialStatusUpdate{UpdatedAt: s.now().UTC()}
	if req != nil {
		update.Completed = req.Completed
		update.CurrentStep = req.CurrentStep
	}
	return update
}
