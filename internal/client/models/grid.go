package models

// Grid layout defaults: 4000 weeks shown as 50 rows of 80.
const (
	GridColumns     = 80
	GridRows        = 50
	DefaultCellSize = 8
	MinZoom         = 0.5
	MaxZoom         = 3.0
)

type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridPreferences is the persisted view state of the week grid.
type GridPreferences struct {
	ZoomLevel float64 `json:"zoomLevel" validate:"gte=0.5,lte=3"`
	PanOffset Offset  `json:"panOffset"`
	CellSize  int     `json:"cellSize" validate:"gte=1"`
}

// DefaultGridPreferences is the initial, unzoomed view.
func DefaultGridPreferences() GridPreferences {
	return GridPreferences{ZoomLevel: 1, CellSize: DefaultCellSize}
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	return min(max(z, MinZoom), MaxZoom)
}
