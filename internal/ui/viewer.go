package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"StudyInk/internal/export"
	"StudyInk/internal/pdfdoc"
	"StudyInk/internal/state"
)

// Viewer is the controller owning the whole drawing session: the document
// geometry, the drawing state, tool selection and live capture, plus the
// widget showing the current page. Toolbar actions and session callbacks
// all route through it.
type Viewer struct {
	Doc     *pdfdoc.Document
	Ink     *state.DocumentDrawingState
	Tools   *state.ToolState
	Capture *state.Capture

	// SendStroke and SendClear, when set, forward local mutations to
	// session peers.
	SendStroke func(page int, s state.Stroke)
	SendClear  func(page int)

	pageWidget *PageWidget
	status     *widget.Label
	pageLabel  *widget.Label
}

// NewViewer assembles the drawing session for an opened document.
func NewViewer(doc *pdfdoc.Document) *Viewer {
	v := &Viewer{
		Doc:       doc,
		Ink:       state.NewDocumentDrawingState(doc.PageCount()),
		Tools:     state.NewToolState(),
		status:    widget.NewLabel("Ready"),
		pageLabel: widget.NewLabel(""),
	}
	v.Capture = state.NewCapture(v.Tools, v.Ink)
	v.Capture.OnCommit = func(page int, s state.Stroke) {
		if v.SendStroke != nil {
			v.SendStroke(page, s)
		}
	}
	v.pageWidget = NewPageWidget(doc, v.Ink, v.Capture)
	v.updatePageLabel()
	return v
}

// SetStatus shows a message in the status bar.
func (v *Viewer) SetStatus(text string) {
	fyne.Do(func() {
		v.status.SetText(text)
	})
}

// ApplyRemote refreshes the canvas after a session peer changed a page.
// Safe to call from the session reader goroutine: the current-page check
// reads widget state, so it runs on the UI goroutine along with the
// refresh.
func (v *Viewer) ApplyRemote(page int) {
	fyne.Do(func() {
		if page == v.pageWidget.Page() {
			v.pageWidget.Refresh()
		}
	})
}

func (v *Viewer) updatePageLabel() {
	v.pageLabel.SetText(fmt.Sprintf("Page %d / %d", v.pageWidget.Page(), v.Doc.PageCount()))
}

// NextPage advances to the following page.
func (v *Viewer) NextPage() {
	v.pageWidget.SetPage(v.pageWidget.Page() + 1)
	v.updatePageLabel()
}

// PrevPage goes back one page.
func (v *Viewer) PrevPage() {
	v.pageWidget.SetPage(v.pageWidget.Page() - 1)
	v.updatePageLabel()
}

// Undo reverts the last mutation on the current page.
func (v *Viewer) Undo() {
	if v.Ink.Undo(v.pageWidget.Page()) {
		v.pageWidget.Refresh()
	}
}

// Redo re-applies the last undone mutation on the current page.
func (v *Viewer) Redo() {
	if v.Ink.Redo(v.pageWidget.Page()) {
		v.pageWidget.Refresh()
	}
}

// ClearPage wipes the current page's ink and tells session peers.
func (v *Viewer) ClearPage() {
	page := v.pageWidget.Page()
	if !v.Ink.ClearPage(page) {
		return
	}
	v.pageWidget.Refresh()
	if v.SendClear != nil {
		v.SendClear(page)
	}
}

// ZoomIn enlarges the page surface by one step.
func (v *Viewer) ZoomIn() {
	v.pageWidget.SetZoom(v.pageWidget.Zoom() * 1.2)
}

// ZoomOut shrinks the page surface by one step.
func (v *Viewer) ZoomOut() {
	v.pageWidget.SetZoom(v.pageWidget.Zoom() / 1.2)
}

// FitWidth sizes the current page to the available width.
func (v *Viewer) FitWidth(availPx float64) {
	v.pageWidget.FitWidth(availPx)
}

// Export writes the annotated document next to the source file.
func (v *Viewer) Export() {
	src := v.Doc.Path()
	out := strings.TrimSuffix(src, filepath.Ext(src)) + "-annotated.pdf"
	if err := export.PDF(out, v.Doc, v.Ink); err != nil {
		log.Printf("[UI] export failed: %v", err)
		v.SetStatus("Export failed: " + err.Error())
		return
	}
	v.SetStatus("Exported " + filepath.Base(out))
}
