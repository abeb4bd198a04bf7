package state

import (
	"log"
	"sync"
)

// DocumentDrawingState owns every drawing for one loaded document: the
// committed strokes per page plus the per-page undo and redo stacks. It is
// the only mutation surface for ink; the UI, the export code and the shared
// session all go through it.
//
// Local mutations arrive from the UI event loop; remote strokes arrive from
// the session reader goroutine, so access is mutex-guarded.
//
// Undo history is unbounded. Snapshots are whole-page stroke slices; strokes
// are immutable once committed, so snapshots share stroke values and only
// the slice headers are copied.
type DocumentDrawingState struct {
	pageCount int
	strokes   map[int]PageDrawingSet
	undo      map[int][]PageDrawingSet
	redo      map[int][]PageDrawingSet
	seen      map[string]bool // stroke IDs, for remote dedup
	mu        sync.RWMutex
}

// NewDocumentDrawingState creates the empty drawing state for a document
// with the given number of pages. Loading a new document means discarding
// the old state and creating a fresh one.
func NewDocumentDrawingState(pageCount int) *DocumentDrawingState {
	return &DocumentDrawingState{
		pageCount: pageCount,
		strokes:   make(map[int]PageDrawingSet),
		undo:      make(map[int][]PageDrawingSet),
		redo:      make(map[int][]PageDrawingSet),
		seen:      make(map[string]bool),
	}
}

// PageCount returns the number of pages in the loaded document.
func (d *DocumentDrawingState) PageCount() int {
	return d.pageCount
}

func (d *DocumentDrawingState) validPage(page int) bool {
	return page >= 1 && page <= d.pageCount
}

// Strokes returns a copy of the committed stroke sequence for a page,
// empty for pages that have never been drawn on.
func (d *DocumentDrawingState) Strokes(page int) PageDrawingSet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cur := d.strokes[page]
	out := make(PageDrawingSet, len(cur))
	copy(out, cur)
	return out
}

// snapshot records the page's current strokes on the undo stack and
// invalidates redo. Call exactly once per logical mutation, before the
// mutation is applied. Caller holds the write lock.
func (d *DocumentDrawingState) snapshot(page int) {
	cur := d.strokes[page]
	snap := make(PageDrawingSet, len(cur))
	copy(snap, cur)
	d.undo[page] = append(d.undo[page], snap)
	d.redo[page] = nil
}

// CommitStroke appends a finished stroke to a page, recording an undo
// snapshot first. Strokes for pages outside the document are dropped.
// Re-delivered strokes (same ID, e.g. echoed back by a session relay)
// are ignored.
func (d *DocumentDrawingState) CommitStroke(page int, s Stroke) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validPage(page) {
		log.Printf("[STATE] dropping stroke %s for page %d outside document", s.ID, page)
		return false
	}
	if d.seen[s.ID] {
		return false
	}
	d.seen[s.ID] = true
	d.snapshot(page)
	d.strokes[page] = append(d.strokes[page], s)
	return true
}

// ClearPage removes all ink from a page. Clearing an already empty page is
// a no-op and records no snapshot, so vacuous clears never pollute undo.
func (d *DocumentDrawingState) ClearPage(page int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validPage(page) || len(d.strokes[page]) == 0 {
		return false
	}
	d.snapshot(page)
	d.strokes[page] = nil
	return true
}

// Undo restores the page to its state before the last mutation. The live
// state moves to the redo stack. No-op when there is nothing to undo.
func (d *DocumentDrawingState) Undo(page int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	stack := d.undo[page]
	if len(stack) == 0 {
		return false
	}
	snap := stack[len(stack)-1]
	d.undo[page] = stack[:len(stack)-1]
	d.redo[page] = append(d.redo[page], d.strokes[page])
	d.strokes[page] = snap
	return true
}

// Redo re-applies the most recently undone mutation. The live state moves
// back to the undo stack. No-op when there is nothing to redo.
func (d *DocumentDrawingState) Redo(page int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	stack := d.redo[page]
	if len(stack) == 0 {
		return false
	}
	snap := stack[len(stack)-1]
	d.redo[page] = stack[:len(stack)-1]
	d.undo[page] = append(d.undo[page], d.strokes[page])
	d.strokes[page] = snap
	return true
}

// CanUndo reports whether the page has any recorded history.
func (d *DocumentDrawingState) CanUndo(page int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.undo[page]) > 0
}

// CanRedo reports whether the page has any undone mutations to re-apply.
func (d *DocumentDrawingState) CanRedo(page int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.redo[page]) > 0
}

// StrokeCount returns the number of committed strokes on a page.
func (d *DocumentDrawingState) StrokeCount(page int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.strokes[page])
}
