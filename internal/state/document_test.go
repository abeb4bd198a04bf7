package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStroke(color string, pts ...Point) Stroke {
	return NewStroke(color, PenWidth, pts)
}

func pageIDs(d *DocumentDrawingState, page int) []string {
	var ids []string
	for _, s := range d.Strokes(page) {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestCommitUndoRedoRoundTrip(t *testing.T) {
	const n = 7
	d := NewDocumentDrawingState(3)

	committed := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s := testStroke("#ff0000", Point{X: 0.1 * float64(i), Y: 0.2})
		require.True(t, d.CommitStroke(1, s))
		committed = append(committed, s.ID)
	}
	require.Equal(t, committed, pageIDs(d, 1))

	// n undos take the page back to empty.
	for i := 0; i < n; i++ {
		require.True(t, d.Undo(1), "undo %d", i)
	}
	assert.Empty(t, d.Strokes(1))
	assert.False(t, d.CanUndo(1))

	// n redos restore the final state in original order.
	for i := 0; i < n; i++ {
		require.True(t, d.Redo(1), "redo %d", i)
	}
	assert.Equal(t, committed, pageIDs(d, 1))
	assert.False(t, d.CanRedo(1))
}

func TestUndoEmptyHistoryIsNoOp(t *testing.T) {
	d := NewDocumentDrawingState(1)
	assert.False(t, d.Undo(1))
	assert.Empty(t, d.Strokes(1))
	assert.False(t, d.CanUndo(1))
	assert.False(t, d.CanRedo(1))
}

func TestRedoEmptyFutureIsNoOp(t *testing.T) {
	d := NewDocumentDrawingState(1)
	d.CommitStroke(1, testStroke("#000000", Point{}, Point{X: 1}))

	assert.False(t, d.Redo(1))
	assert.Len(t, d.Strokes(1), 1)
	assert.True(t, d.CanUndo(1))
}

func TestMutationClearsRedoStack(t *testing.T) {
	d := NewDocumentDrawingState(1)
	d.CommitStroke(1, testStroke("#000000", Point{}, Point{X: 1}))
	d.CommitStroke(1, testStroke("#000000", Point{}, Point{Y: 1}))

	require.True(t, d.Undo(1))
	require.True(t, d.CanRedo(1))

	// A fresh commit invalidates the undone future.
	d.CommitStroke(1, testStroke("#0000ff", Point{}, Point{X: 0.5}))
	assert.False(t, d.CanRedo(1))
	assert.False(t, d.Redo(1))

	// Same for a non-vacuous clear.
	require.True(t, d.Undo(1))
	require.True(t, d.CanRedo(1))
	require.True(t, d.ClearPage(1))
	assert.False(t, d.CanRedo(1))
}

func TestVacuousClearRecordsNoHistory(t *testing.T) {
	d := NewDocumentDrawingState(2)

	assert.False(t, d.ClearPage(1))
	assert.False(t, d.CanUndo(1))

	// Clear, then clear again: the second one must not snapshot.
	d.CommitStroke(1, testStroke("#000000", Point{}, Point{X: 1}))
	require.True(t, d.ClearPage(1))
	require.False(t, d.ClearPage(1))

	// Exactly two undo entries exist: the commit's and the clear's.
	require.True(t, d.Undo(1))
	require.True(t, d.Undo(1))
	assert.False(t, d.CanUndo(1))
}

// The concrete scenario from the drawing model: pen stroke A, eraser
// stroke B, then walking history in both directions.
func TestEraserScenario(t *testing.T) {
	d := NewDocumentDrawingState(1)
	a := testStroke("#ff0000", Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	b := NewStroke(EraserColor, EraserWidth, []Point{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.8}})

	require.True(t, d.CommitStroke(1, a))
	require.True(t, d.CommitStroke(1, b))
	require.Equal(t, []string{a.ID, b.ID}, pageIDs(d, 1))

	require.True(t, d.Undo(1))
	assert.Equal(t, []string{a.ID}, pageIDs(d, 1))

	require.True(t, d.Redo(1))
	assert.Equal(t, []string{a.ID, b.ID}, pageIDs(d, 1))

	require.True(t, d.Undo(1))
	require.True(t, d.Undo(1))
	assert.Empty(t, d.Strokes(1))

	// Third undo has nothing left to pop.
	assert.False(t, d.Undo(1))
	assert.Empty(t, d.Strokes(1))
}

func TestPerPageIndependence(t *testing.T) {
	d := NewDocumentDrawingState(5)
	s1 := testStroke("#000000", Point{}, Point{X: 1})
	s2 := testStroke("#ff0000", Point{}, Point{Y: 1})
	d.CommitStroke(1, s1)
	d.CommitStroke(2, s2)

	// Page 1 churn must not move page 2.
	d.Undo(1)
	d.Redo(1)
	d.ClearPage(1)
	d.Undo(1)

	assert.Equal(t, []string{s2.ID}, pageIDs(d, 2))
	assert.True(t, d.CanUndo(2))
	assert.False(t, d.CanRedo(2))
}

func TestInvalidPagesAreBenign(t *testing.T) {
	d := NewDocumentDrawingState(2)

	assert.False(t, d.CommitStroke(0, testStroke("#000000", Point{}, Point{X: 1})))
	assert.False(t, d.CommitStroke(3, testStroke("#000000", Point{}, Point{X: 1})))
	assert.False(t, d.ClearPage(99))
	assert.False(t, d.Undo(99))
	assert.False(t, d.Redo(99))
	assert.Empty(t, d.Strokes(3))
}

func TestDuplicateStrokeIDsIgnored(t *testing.T) {
	d := NewDocumentDrawingState(1)
	s := testStroke("#000000", Point{}, Point{X: 1})

	require.True(t, d.CommitStroke(1, s))
	// A relay echo delivers the same stroke again.
	assert.False(t, d.CommitStroke(1, s))
	assert.Len(t, d.Strokes(1), 1)
	// And the echo must not have snapshotted.
	require.True(t, d.Undo(1))
	assert.False(t, d.CanUndo(1))
}

func TestHistoryDepthUnbounded(t *testing.T) {
	const deep = 2000
	d := NewDocumentDrawingState(1)
	for i := 0; i < deep; i++ {
		d.CommitStroke(1, testStroke("#000000", Point{}, Point{X: float64(i%100) / 100}))
	}
	for i := 0; i < deep; i++ {
		require.True(t, d.Undo(1), fmt.Sprintf("undo %d", i))
	}
	assert.Empty(t, d.Strokes(1))
}
