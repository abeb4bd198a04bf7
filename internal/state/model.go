package state

import (
	"time"

	"github.com/google/uuid"
)

// Point is a position on a page, expressed as fractions of the page's
// current display width and height. Both coordinates are in [0,1], so a
// point maps onto any surface of size W x H as (X*W, Y*H) no matter what
// zoom level was active when it was recorded.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EraserColor is the sentinel stroke color meaning "remove underlying ink"
// rather than "paint with this color".
const EraserColor = "eraser"

// Stroke widths are normalized the same way point coordinates are: as a
// fraction of the page's display width, so ink thickness tracks zoom.
const (
	PenWidth    = 0.004
	EraserWidth = 0.025
)

// Stroke is one committed freehand ink path. A stroke is immutable once
// committed; undo snapshots share stroke values freely because of this.
type Stroke struct {
	ID     string    `json:"id"`
	Color  string    `json:"color"` // "#rrggbb" or EraserColor
	Width  float64   `json:"width"`
	Points []Point   `json:"points"`
	Time   time.Time `json:"time"`
}

// NewStroke builds a committed stroke from a finished capture path.
// The points slice is not copied; callers hand over ownership.
func NewStroke(color string, width float64, points []Point) Stroke {
	return Stroke{
		ID:     uuid.NewString(),
		Color:  color,
		Width:  width,
		Points: points,
		Time:   time.Now(),
	}
}

// IsEraser reports whether the stroke clears ink instead of painting it.
func (s Stroke) IsEraser() bool {
	return s.Color == EraserColor
}

// PageDrawingSet is the ordered ink of one page. Insertion order is paint
// order: later strokes draw on top of (or erase over) earlier ones.
type PageDrawingSet []Stroke
