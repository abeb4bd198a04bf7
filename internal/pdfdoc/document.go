package pdfdoc

import (
	"fmt"
	"log"
	"math"

	"github.com/ledongthuc/pdf"
)

// Letter-sized fallback for pages with a missing or malformed MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// PageSize is a page's media box extent in PDF points.
type PageSize struct {
	Width  float64
	Height float64
}

// Document is the page geometry provider for one loaded PDF: page count
// and per-page sizes, read once at open time. It does not render page
// content; the viewer composites ink over a blank page-shaped surface.
type Document struct {
	path  string
	sizes []PageSize
}

// Open reads the PDF's page tree and captures every page's media box.
// The file is not kept open afterwards.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %q: %w", path, err)
	}
	defer f.Close()

	n := r.NumPage()
	if n < 1 {
		return nil, fmt.Errorf("pdf %q has no pages", path)
	}

	d := &Document{path: path, sizes: make([]PageSize, n)}
	for i := 1; i <= n; i++ {
		d.sizes[i-1] = mediaBoxSize(r.Page(i))
	}
	log.Printf("[PDF] opened %q: %d pages", path, n)
	return d, nil
}

// mediaBoxSize resolves a page's MediaBox, walking up the page tree for
// inherited values and falling back to Letter when absent.
func mediaBoxSize(p pdf.Page) PageSize {
	v := p.V
	for !v.IsNull() {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			w := math.Abs(mb.Index(2).Float64() - mb.Index(0).Float64())
			h := math.Abs(mb.Index(3).Float64() - mb.Index(1).Float64())
			if w > 0 && h > 0 {
				return PageSize{Width: w, Height: h}
			}
		}
		v = v.Key("Parent")
	}
	return PageSize{Width: defaultPageWidth, Height: defaultPageHeight}
}

// Path returns the file the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.sizes)
}

// PageSize returns the media box extent of a page in points. Pages outside
// the document report the Letter fallback, keeping callers total.
func (d *Document) PageSize(page int) PageSize {
	if page < 1 || page > len(d.sizes) {
		return PageSize{Width: defaultPageWidth, Height: defaultPageHeight}
	}
	return d.sizes[page-1]
}

// DisplaySize returns the pixel dimensions for a page at the given zoom,
// with one PDF point mapping to one pixel at zoom 1.0.
func (d *Document) DisplaySize(page int, zoom float64) (int, int) {
	sz := d.PageSize(page)
	w := int(math.Round(sz.Width * zoom))
	h := int(math.Round(sz.Height * zoom))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// FitWidthZoom returns the zoom factor that makes a page fill availPx
// pixels of width.
func (d *Document) FitWidthZoom(page int, availPx float64) float64 {
	sz := d.PageSize(page)
	if availPx <= 0 || sz.Width <= 0 {
		return 1.0
	}
	return availPx / sz.Width
}
