package render

import (
	"image"
	"image/color"
	"math"

	"StudyInk/internal/state"
)

// The compositor rasterizes committed ink plus the in-progress stroke onto
// an RGBA surface sized to the page's current display dimensions. The page
// itself lives on a separate layer underneath, so the eraser only clears
// ink pixels, never page content.
//
// All geometry is re-derived from normalized points at the current surface
// size on every render. There is deliberately no caching of pixel
// coordinates and no scaling of previous output: resizing the surface and
// re-rendering is the whole zoom model.

// Absolute converts a normalized point to pixel coordinates on a surface
// of the given size.
func Absolute(p state.Point, w, h int) (float64, float64) {
	return p.X * float64(w), p.Y * float64(h)
}

// Render composites strokes onto a fresh transparent surface of size w x h.
// live may be nil when no stroke is in progress.
func Render(w, h int, strokes state.PageDrawingSet, live *state.Stroke) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Compose(dst, strokes, live)
	return dst
}

// Compose draws strokes in paint order onto an existing surface. Eraser
// strokes clear to transparent along their path; everything else paints
// over with the stroke color. Caps and joins are round.
func Compose(dst *image.RGBA, strokes state.PageDrawingSet, live *state.Stroke) {
	for _, s := range strokes {
		drawStroke(dst, s)
	}
	if live != nil {
		drawStroke(dst, *live)
	}
}

func drawStroke(dst *image.RGBA, s state.Stroke) {
	if len(s.Points) == 0 {
		return
	}
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()

	radius := s.Width * float64(w) / 2
	if radius < 1 {
		radius = 1
	}
	col := parseHexColor(s.Color)
	erase := s.IsEraser()

	// Round caps and joins fall out of stamping discs along the path.
	x0, y0 := Absolute(s.Points[0], w, h)
	stampDisc(dst, x0, y0, radius, col, erase)
	for i := 1; i < len(s.Points); i++ {
		x1, y1 := Absolute(s.Points[i], w, h)
		stampSegment(dst, x0, y0, x1, y1, radius, col, erase)
		x0, y0 = x1, y1
	}
}

// stampSegment covers the line from (x0,y0) to (x1,y1) with discs spaced
// closely enough to look continuous.
func stampSegment(dst *image.RGBA, x0, y0, x1, y1, radius float64, col color.RGBA, erase bool) {
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Hypot(dx, dy)
	steps := int(dist*2) + 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stampDisc(dst, x0+dx*t, y0+dy*t, radius, col, erase)
	}
}

func stampDisc(dst *image.RGBA, cx, cy, radius float64, col color.RGBA, erase bool) {
	b := dst.Bounds()
	xMin := int(math.Floor(cx - radius))
	xMax := int(math.Ceil(cx + radius))
	yMin := int(math.Floor(cy - radius))
	yMax := int(math.Ceil(cy + radius))
	r2 := radius * radius

	for y := yMin; y <= yMax; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := xMin; x <= xMax; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			ddx := float64(x) + 0.5 - cx
			ddy := float64(y) + 0.5 - cy
			if ddx*ddx+ddy*ddy > r2 {
				continue
			}
			if erase {
				dst.SetRGBA(x, y, color.RGBA{})
			} else {
				dst.SetRGBA(x, y, col)
			}
		}
	}
}

// parseHexColor decodes "#rrggbb". Anything unparseable paints black, the
// same fallback the toolbar starts from.
func parseHexColor(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	v, ok := hexByte(s[1], s[2])
	if !ok {
		return c
	}
	c.R = v
	if c.G, ok = hexByte(s[3], s[4]); !ok {
		return color.RGBA{A: 0xff}
	}
	if c.B, ok = hexByte(s[5], s[6]); !ok {
		return color.RGBA{A: 0xff}
	}
	return c
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
