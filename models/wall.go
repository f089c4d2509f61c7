package models

// Obstacle represents an axis-aligned rectangular obstacle on the wall,
// anchored at its bottom-left corner.
type Obstacle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlanRequest is the body of a coverage planning request.
// Wall dimensions must be positive; the obstacle list may be empty.
type PlanRequest struct {
	WallWidth  float64    `json:"wall_width"`
	WallHeight float64    `json:"wall_height"`
	Obstacles  []Obstacle `json:"obstacles"`
}
