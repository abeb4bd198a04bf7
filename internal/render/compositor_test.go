package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StudyInk/internal/state"
)

func TestAbsoluteIsResizeInvariant(t *testing.T) {
	p := state.Point{X: 0.5, Y: 0.5}

	x, y := Absolute(p, 600, 800)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 400.0, y)

	// Doubling the surface doubles the pixel position, nothing else.
	x, y = Absolute(p, 1200, 1600)
	assert.Equal(t, 600.0, x)
	assert.Equal(t, 800.0, y)
}

func TestRenderPaintsStrokeColor(t *testing.T) {
	s := state.Stroke{
		Color:  "#ff0000",
		Width:  state.PenWidth,
		Points: []state.Point{{X: 0.25, Y: 0.5}, {X: 0.75, Y: 0.5}},
	}

	img := Render(200, 100, state.PageDrawingSet{s}, nil)

	// The stroke runs horizontally through (100, 50).
	got := img.RGBAAt(100, 50)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, got)
	// Far from the path stays transparent.
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10))
}

func TestRenderAtDifferentSizesTracksNormalizedGeometry(t *testing.T) {
	s := state.Stroke{
		Color:  "#000000",
		Width:  state.PenWidth,
		Points: []state.Point{{X: 0.5, Y: 0.1}, {X: 0.5, Y: 0.9}},
	}

	for _, size := range []struct{ w, h int }{{100, 100}, {400, 300}, {1200, 1600}} {
		img := Render(size.w, size.h, state.PageDrawingSet{s}, nil)
		cx := size.w / 2
		cy := size.h / 2
		got := img.RGBAAt(cx, cy)
		require.NotZero(t, got.A, "stroke missing at center for %dx%d", size.w, size.h)
	}
}

func TestEraserClearsCommittedInk(t *testing.T) {
	pen := state.Stroke{
		Color:  "#0000ff",
		Width:  0.02,
		Points: []state.Point{{X: 0.1, Y: 0.5}, {X: 0.9, Y: 0.5}},
	}
	eraser := state.Stroke{
		Color:  state.EraserColor,
		Width:  state.EraserWidth,
		Points: []state.Point{{X: 0.5, Y: 0.1}, {X: 0.5, Y: 0.9}},
	}

	img := Render(200, 200, state.PageDrawingSet{pen, eraser}, nil)

	// Where only the pen passed, ink remains.
	assert.NotZero(t, img.RGBAAt(30, 100).A)
	// Where the eraser crossed the pen line, the surface is transparent.
	assert.Equal(t, color.RGBA{}, img.RGBAAt(100, 100))
}

func TestPaintOrderLaterStrokesWin(t *testing.T) {
	red := state.Stroke{
		Color:  "#ff0000",
		Width:  0.05,
		Points: []state.Point{{X: 0.2, Y: 0.5}, {X: 0.8, Y: 0.5}},
	}
	blue := state.Stroke{
		Color:  "#0000ff",
		Width:  0.05,
		Points: []state.Point{{X: 0.2, Y: 0.5}, {X: 0.8, Y: 0.5}},
	}

	img := Render(100, 100, state.PageDrawingSet{red, blue}, nil)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(50, 50))
}

func TestLiveStrokeComposited(t *testing.T) {
	live := state.Stroke{
		Color:  "#008000",
		Width:  state.PenWidth,
		Points: []state.Point{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.9}},
	}
	img := Render(100, 100, nil, &live)
	assert.NotZero(t, img.RGBAAt(50, 50).A)
}

func TestSinglePointStrokeRendersDot(t *testing.T) {
	dot := state.Stroke{
		Color:  "#000000",
		Width:  0.02,
		Points: []state.Point{{X: 0.5, Y: 0.5}},
	}
	img := Render(100, 100, state.PageDrawingSet{dot}, nil)
	assert.NotZero(t, img.RGBAAt(50, 50).A)
}

func TestRenderEmptyPage(t *testing.T) {
	img := Render(64, 64, nil, nil)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(32, 32))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"#008000", color.RGBA{G: 0x80, A: 0xff}},
		{"#0000FF", color.RGBA{B: 0xff, A: 0xff}},
		{"#ffcc00", color.RGBA{R: 0xff, G: 0xcc, A: 0xff}},
		{"not-a-color", color.RGBA{A: 0xff}},
		{"#12345", color.RGBA{A: 0xff}},
		{"", color.RGBA{A: 0xff}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseHexColor(tc.in), "input %q", tc.in)
	}
}
