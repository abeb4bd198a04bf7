package pdfdoc

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture produces a small PDF: two A4 pages and one 300x500 pt page.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")

	p := gofpdf.New("P", "pt", "A4", "")
	p.AddPage()
	p.AddPage()
	p.AddPageFormat("P", gofpdf.SizeType{Wd: 300, Ht: 500})
	require.NoError(t, p.OutputFileAndClose(path))
	return path
}

func TestOpenReadsPageGeometry(t *testing.T) {
	doc, err := Open(writeFixture(t))
	require.NoError(t, err)

	assert.Equal(t, 3, doc.PageCount())

	// A4 in points.
	sz := doc.PageSize(1)
	assert.InDelta(t, 595.28, sz.Width, 0.5)
	assert.InDelta(t, 841.89, sz.Height, 0.5)

	sz = doc.PageSize(3)
	assert.InDelta(t, 300, sz.Width, 0.5)
	assert.InDelta(t, 500, sz.Height, 0.5)
}

func TestPageSizeOutOfRangeFallsBack(t *testing.T) {
	doc, err := Open(writeFixture(t))
	require.NoError(t, err)

	for _, page := range []int{0, -1, 4, 99} {
		sz := doc.PageSize(page)
		assert.Equal(t, defaultPageWidth, sz.Width, "page %d", page)
		assert.Equal(t, defaultPageHeight, sz.Height, "page %d", page)
	}
}

func TestDisplaySize(t *testing.T) {
	doc, err := Open(writeFixture(t))
	require.NoError(t, err)

	w, h := doc.DisplaySize(3, 1.0)
	assert.Equal(t, 300, w)
	assert.Equal(t, 500, h)

	w, h = doc.DisplaySize(3, 2.0)
	assert.Equal(t, 600, w)
	assert.Equal(t, 1000, h)

	// Zoom never collapses a page to nothing.
	w, h = doc.DisplaySize(3, 0.0001)
	assert.GreaterOrEqual(t, w, 1)
	assert.GreaterOrEqual(t, h, 1)
}

func TestFitWidthZoom(t *testing.T) {
	doc, err := Open(writeFixture(t))
	require.NoError(t, err)

	z := doc.FitWidthZoom(3, 600)
	assert.InDelta(t, 2.0, z, 0.01)

	w, _ := doc.DisplaySize(3, z)
	assert.Equal(t, 600, w)

	// Degenerate available width keeps the zoom sane.
	assert.Equal(t, 1.0, doc.FitWidthZoom(3, 0))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}
