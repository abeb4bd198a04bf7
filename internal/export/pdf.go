package export

import (
	"bytes"
	"fmt"
	"image/png"
	"log"

	"github.com/jung-kurt/gofpdf"

	"StudyInk/internal/pdfdoc"
	"StudyInk/internal/render"
	"StudyInk/internal/state"
)

// Exported ink is rasterized at this many pixels per PDF point.
const rasterScale = 2.0

// PDF writes a new document with every page's committed ink flattened to a
// full-page image. Page sizes mirror the source document; pages without ink
// come out blank. The source page content itself is not reproduced, only
// the annotation layer.
func PDF(path string, doc *pdfdoc.Document, ink *state.DocumentDrawingState) error {
	p := gofpdf.New("P", "pt", "A4", "")

	for page := 1; page <= doc.PageCount(); page++ {
		sz := doc.PageSize(page)
		orient := "P"
		if sz.Width > sz.Height {
			orient = "L"
		}
		p.AddPageFormat(orient, gofpdf.SizeType{Wd: sz.Width, Ht: sz.Height})

		strokes := ink.Strokes(page)
		if len(strokes) == 0 {
			continue
		}

		w, h := doc.DisplaySize(page, rasterScale)
		img := render.Render(w, h, strokes, nil)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode ink for page %d: %w", page, err)
		}

		name := fmt.Sprintf("ink-page-%d", page)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		p.RegisterImageOptionsReader(name, opts, &buf)
		p.ImageOptions(name, 0, 0, sz.Width, sz.Height, false, opts, 0, "")
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	log.Printf("[EXPORT] wrote %q (%d pages)", path, doc.PageCount())
	return nil
}
