package models

import "time"

// FloorPlanResponse represents a (simulated) generated floor plan
type FloorPlanResponse struct {
	FloorPlanID string              `json:"floorPlanId"` // "fp_" + unix millis
	ImageURL    string              `json:"imageUrl"`
	Parameters  FloorPlanParameters `json:"parameters"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// FloorPlanParameters echoes the request back to the caller
type FloorPlanParameters struct {
	Length           Measure          `json:"length"`
	Width            Measure          `json:"width"`
	Bedrooms         Count            `json:"bedrooms"`
	DrawingRoom      Count            `json:"drawingRoom"`
	Kitchen          Count            `json:"kitchen"`
	Toilet           Count            `json:"toilet"`
	AdditionalSpaces AdditionalSpaces `json:"additionalSpaces"`
}

type AdditionalSpaces struct {
	HasParking    bool    `json:"hasParking"`
	ParkingLength Measure `json:"parkingLength"`
	ParkingWidth  Measure `json:"parkingWidth"`
	ParkingDepth  Measure `json:"parkingDepth"`
	HasPorch      bool    `json:"hasPorch"`
	Porch         Count   `json:"porch"`
	HasVeranda    bool    `json:"hasVeranda"`
	Veranda       Count   `json:"veranda"`
}

// ParametersOf copies a request into its echoed form.
func ParametersOf(req *FloorPlanRequest) FloorPlanParameters {
	return FloorPlanParameters{
		Length:      req.Length,
		Width:       req.Width,
		Bedrooms:    req.Bedrooms,
		DrawingRoom: req.DrawingRoom,
		Kitchen:     req.Kitchen,
		Toilet:      req.Toilet,
		AdditionalSpaces: AdditionalSpaces{
			HasParking:    req.HasParking,
			ParkingLength: req.ParkingLength,
			ParkingWidth:  req.ParkingWidth,
			ParkingDepth:  req.ParkingDepth,
			HasPorch:      req.HasPorch,
			Porch:         req.Porch,
			HasVeranda:    req.HasVeranda,
			Veranda:       req.Veranda,
		},
	}
}
