package state

// Capture turns pointer input into a normalized in-progress path and, on
// release, promotes it to a committed stroke. It is a two-state machine:
// idle until a begin event arrives with drawing mode on, capturing until
// the matching end event.
//
// The host UI delivers points already normalized to [0,1] relative to the
// page surface. Dispatch is single-threaded (the UI event loop), so Capture
// itself carries no lock.
type Capture struct {
	tools *ToolState
	doc   *DocumentDrawingState

	// OnCommit fires after a finished stroke lands in the store, e.g. to
	// broadcast it to session peers and refresh the canvas.
	OnCommit func(page int, s Stroke)

	capturing bool
	page      int
	color     string
	width     float64
	points    []Point
}

// NewCapture wires live stroke capture to the tool state it reads and the
// drawing store it commits into.
func NewCapture(tools *ToolState, doc *DocumentDrawingState) *Capture {
	return &Capture{tools: tools, doc: doc}
}

// Begin starts a capture at p if drawing mode is enabled. The active tool's
// color and width are stamped now, so toggling tools mid-stroke does not
// change the stroke being drawn.
func (c *Capture) Begin(page int, p Point) {
	if c.capturing || !c.tools.DrawingEnabled() {
		return
	}
	c.capturing = true
	c.page = page
	c.color = c.tools.ActiveColor()
	c.width = c.tools.ActiveWidth()
	c.points = []Point{p}
}

// Move extends the in-progress path. If drawing mode was toggled off while
// capturing, moves are ignored; the capture stays frozen and the final
// commit still happens on End.
func (c *Capture) Move(p Point) {
	if !c.capturing || !c.tools.DrawingEnabled() {
		return
	}
	c.points = append(c.points, p)
}

// End finishes the capture. Paths with at least two points become a
// committed stroke; a bare press-and-release leaves no ink. The buffer is
// cleared either way.
func (c *Capture) End() {
	if !c.capturing {
		return
	}
	page, points := c.page, c.points
	color, width := c.color, c.width
	c.capturing = false
	c.points = nil

	if len(points) < 2 {
		return
	}
	s := NewStroke(color, width, points)
	if c.doc.CommitStroke(page, s) && c.OnCommit != nil {
		c.OnCommit(page, s)
	}
}

// Capturing reports whether a stroke is in progress.
func (c *Capture) Capturing() bool {
	return c.capturing
}

// Page returns the page the in-progress stroke belongs to.
func (c *Capture) Page() int {
	return c.page
}

// LiveStroke returns the in-progress path as a stroke value for
// compositing, or false when idle. The returned points are shared with the
// capture buffer and only valid until the next event.
func (c *Capture) LiveStroke() (Stroke, bool) {
	if !c.capturing || len(c.points) == 0 {
		return Stroke{}, false
	}
	return Stroke{Color: c.color, Width: c.width, Points: c.points}, true
}
