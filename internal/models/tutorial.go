package models

import (
	"encoding/json"
	"time"
)

// TutorialStatusRequest represents the body of POST /api/tutorial-status.
// Values are kept as sent, whatever their JSON type; missing ones are echoed back as null.
type TutorialStatusRequest struct {
	Completed   json.RawMessage `json:"completed"`
	CurrentStep json.RawMessage `json:"currentStep"`
}

// TutorialStatus is returned by GET /api/tutorial-status
type TutorialStatus struct {
	Completed   bool      `json:"completed"`
	CurrentStep int       `json:"currentStep"`
	LastVisited time.Time `json:"lastVisited"`
}

// TutorialStatusUpdate is returned by POST /api/tutorial-status
type TutorialStatusUpdate struct {
	Completed   json.RawMessage `json:"completed"`
	CurrentStep json.RawMessage `json:"currentStep"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
