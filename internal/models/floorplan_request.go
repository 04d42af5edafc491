package models

// FloorPlanRequest represents the parameters for generating a floor plan, submitted either as
// JSON to /api/generate-floorplan or form-encoded from the /app page. Plot dimensions are in feet.
type FloorPlanRequest struct {
	Length      Measure `json:"length" form:"length" validate:"present,gt=0"`
	Width       Measure `json:"width" form:"width" validate:"present,gt=0"`
	Bedrooms    Count   `json:"bedrooms" form:"bedrooms" validate:"present,gte=0"`
	DrawingRoom Count   `json:"drawingRoom" form:"drawingRoom" validate:"present,gte=0"`
	Kitchen     Count   `json:"kitchen" form:"kitchen" validate:"present,gte=0"`
	Toilet      Count   `json:"toilet" form:"toilet" validate:"present,gte=1"`

	// Optional spaces; each group is checked as a whole when its flag is set
	HasParking    bool    `json:"hasParking" form:"hasParking"`
	ParkingLength Measure `json:"parkingLength" form:"parkingLength"`
	ParkingWidth  Measure `json:"parkingWidth" form:"parkingWidth"`
	ParkingDepth  Measure `json:"parkingDepth" form:"parkingDepth"`
	HasPorch      bool    `json:"hasPorch" form:"hasPorch"`
	Porch         Count   `json:"porch" form:"porch"`
	HasVeranda    bool    `json:"hasVeranda" form:"hasVeranda"`
	Veranda       Count   `json:"veranda" form:"veranda"`
}

// Group names for the optional spaces.
const (
	GroupParking = "parking"
	GroupPorch   = "porch"
	GroupVeranda = "veranda"
)

var floorPlanMessages = map[string]map[string]string{
	"length":        {"present": "Length is required", "gt": "Length must be greater than 0"},
	"width":         {"present": "Width is required", "gt": "Width must be greater than 0"},
	"bedrooms":      {"present": "Number of bedrooms is required", "gte": "Number of bedrooms cannot be negative"},
	"drawingRoom":   {"present": "Number of drawing rooms is required", "gte": "Number of drawing rooms cannot be negative"},
	"kitchen":       {"present": "Number of kitchens is required", "gte": "Number of kitchens cannot be negative"},
	"toilet":        {"present": "Number of toilets is required", "gte": "At least one toilet is required"},
	"parkingLength": {"gt": "Parking length must be greater than 0"},
	"parkingWidth":  {"gt": "Parking width must be greater than 0"},
	"parkingDepth":  {"gt": "Parking depth must be greater than 0"},
	"porch":         {"gte": "Number of porches must be at least 1"},
	"veranda":       {"gte": "Number of verandas must be at least 1"},
}

// ValidationMessage returns the human readable message for a failed rule.
func (r FloorPlanRequest) ValidationMessage(field, tag string) string {
	return floorPlanMessages[field][tag]
}

// ValidationGroup maps a conditional field to its group and the single message shown
// for the whole group on the form.
func (r FloorPlanRequest) ValidationGroup(field string) (string, string) {
	switch field {
	case "parkingLength", "parkingWidth", "parkingDepth":
		return GroupParking, "Parking dimensions must be provided and greater than 0"
	case "porch":
		return GroupPorch, "Number of porches must be at least 1"
	case "veranda":
		return GroupVeranda, "Number of verandas must be at least 1"
	}
	return "", ""
}
