package state

import "sync"

// DefaultPenColor matches the toolbar's initial swatch.
const DefaultPenColor = "#000000"

// ToolState is the externally owned tool selection: whether drawing mode is
// on, the active pen color, and whether the eraser is selected. Capture
// reads it when a stroke begins; the toolbar mutates it.
type ToolState struct {
	mu      sync.RWMutex
	drawing bool
	color   string
	eraser  bool
}

// NewToolState starts with drawing enabled and the default pen selected.
func NewToolState() *ToolState {
	return &ToolState{drawing: true, color: DefaultPenColor}
}

// SetDrawingEnabled toggles drawing mode on or off.
func (t *ToolState) SetDrawingEnabled(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.drawing = on
}

// DrawingEnabled reports whether pointer input should start or extend ink.
func (t *ToolState) DrawingEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.drawing
}

// SetColor selects a pen color and leaves eraser mode.
func (t *ToolState) SetColor(hex string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = hex
	t.eraser = false
}

// UseEraser switches between the eraser and the last selected pen color.
func (t *ToolState) UseEraser(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraser = on
}

// ActiveColor returns the color a new stroke would be stamped with:
// the eraser sentinel when erasing, otherwise the selected pen color.
func (t *ToolState) ActiveColor() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.eraser {
		return EraserColor
	}
	return t.color
}

// ActiveWidth returns the normalized stroke width for the selected tool.
func (t *ToolState) ActiveWidth() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.eraser {
		return EraserWidth
	}
	return PenWidth
}
