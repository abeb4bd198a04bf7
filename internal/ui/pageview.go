package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"StudyInk/internal/pdfdoc"
	"StudyInk/internal/render"
	"StudyInk/internal/state"
)

// PageWidget shows one PDF page with its ink layer and feeds pointer input
// into live stroke capture. The widget's size always equals the page's
// current display dimensions; the ink raster regenerates from normalized
// stroke data at whatever pixel size the driver asks for, which is what
// keeps ink locked to the page across zoom and fit-to-width changes.
type PageWidget struct {
	widget.BaseWidget
	doc     *pdfdoc.Document
	ink     *state.DocumentDrawingState
	capture *state.Capture

	page int
	zoom float64
}

var _ fyne.Widget = (*PageWidget)(nil)
var _ fyne.Draggable = (*PageWidget)(nil)
var _ desktop.Mouseable = (*PageWidget)(nil)
var _ desktop.Hoverable = (*PageWidget)(nil)

func NewPageWidget(doc *pdfdoc.Document, ink *state.DocumentDrawingState, capture *state.Capture) *PageWidget {
	w := &PageWidget{
		doc:     doc,
		ink:     ink,
		capture: capture,
		page:    1,
		zoom:    1.0,
	}
	w.ExtendBaseWidget(w)
	return w
}

// Page returns the page currently displayed.
func (w *PageWidget) Page() int {
	return w.page
}

// SetPage switches the displayed page. A stroke in progress is committed
// first so it cannot leak onto the new page.
func (w *PageWidget) SetPage(page int) {
	if page < 1 || page > w.doc.PageCount() {
		return
	}
	w.capture.End()
	w.page = page
	w.Refresh()
}

// Zoom returns the current zoom factor.
func (w *PageWidget) Zoom() float64 {
	return w.zoom
}

// SetZoom resizes the page surface. Committed ink is unaffected beyond
// being re-rendered at the new dimensions.
func (w *PageWidget) SetZoom(z float64) {
	if z < 0.3 {
		z = 0.3
	}
	if z > 4.0 {
		z = 4.0
	}
	w.zoom = z
	w.Refresh()
}

// FitWidth picks the zoom that fills availPx pixels of width with the
// current page.
func (w *PageWidget) FitWidth(availPx float64) {
	w.SetZoom(w.doc.FitWidthZoom(w.page, availPx))
}

func (w *PageWidget) displaySize() fyne.Size {
	pw, ph := w.doc.DisplaySize(w.page, w.zoom)
	return fyne.NewSize(float32(pw), float32(ph))
}

// normalize maps a widget-local position into [0,1] page fractions.
func (w *PageWidget) normalize(pos fyne.Position) state.Point {
	size := w.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Point{}
	}
	p := state.Point{
		X: float64(pos.X) / float64(size.Width),
		Y: float64(pos.Y) / float64(size.Height),
	}
	p.X = clamp01(p.X)
	p.Y = clamp01(p.Y)
	return p
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (w *PageWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.capture.Begin(w.page, w.normalize(e.Position))
	w.Refresh()
}

func (w *PageWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.capture.End()
	w.Refresh()
}

func (w *PageWidget) Dragged(e *fyne.DragEvent) {
	if !w.capture.Capturing() {
		return
	}
	w.capture.Move(w.normalize(e.Position))
	w.Refresh()
}

func (w *PageWidget) DragEnd() {
	w.capture.End()
	w.Refresh()
}

func (w *PageWidget) MouseIn(*desktop.MouseEvent) {}

// Motion with the button held arrives via Dragged; appending here as well
// would record every point twice.
func (w *PageWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut commits a stroke in progress; leaving the page surface ends the
// capture the same way releasing the button does.
func (w *PageWidget) MouseOut() {
	if w.capture.Capturing() {
		w.capture.End()
		w.Refresh()
	}
}

// drawInk is the raster generator: it re-derives every stroke's pixel
// geometry from normalized points at the surface size the driver asks for.
func (w *PageWidget) drawInk(px, py int) image.Image {
	var live *state.Stroke
	if s, ok := w.capture.LiveStroke(); ok && w.capture.Page() == w.page {
		live = &s
	}
	return render.Render(px, py, w.ink.Strokes(w.page), live)
}

func (w *PageWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &pageWidgetRenderer{pw: w}
	r.paper = canvas.NewRectangle(color.White)
	r.ink = canvas.NewRaster(w.drawInk)
	return r
}

type pageWidgetRenderer struct {
	pw    *PageWidget
	paper *canvas.Rectangle
	ink   *canvas.Raster
}

func (r *pageWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.paper, r.ink}
}

func (r *pageWidgetRenderer) Layout(size fyne.Size) {
	r.paper.Resize(size)
	r.ink.Resize(size)
}

func (r *pageWidgetRenderer) MinSize() fyne.Size {
	return r.pw.displaySize()
}

func (r *pageWidgetRenderer) Refresh() {
	r.ink.Refresh()
	canvas.Refresh(r.pw)
}

func (r *pageWidgetRenderer) Destroy() {}
