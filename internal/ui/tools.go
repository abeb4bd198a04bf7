package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// The toolbar's pen palette. Swatch order is display order.
var penColors = []string{
	"#000000", // black
	"#ff0000", // red
	"#008000", // green
	"#0000ff", // blue
	"#ffcc00", // yellow
}

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(hex string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(swatchColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

func swatchColor(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// --- The main toolbar ---

// NewToolbar builds the tool strip: pen/eraser/pan modes, the color
// palette, history and page controls, zoom, and export.
func NewToolbar(v *Viewer, fitWidth func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			v.Tools.SetDrawingEnabled(true)
			v.Tools.UseEraser(false)
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			v.Tools.SetDrawingEnabled(true)
			v.Tools.UseEraser(true)
		}), // Eraser
		widget.NewToolbarAction(theme.VisibilityIcon(), func() {
			v.Tools.SetDrawingEnabled(false)
		}), // Read-only mode: pointer input leaves no ink
	)

	colorBox := container.NewHBox()
	for _, hex := range penColors {
		colorBox.Add(newColorSwatch(hex, func(hex string) {
			v.Tools.SetDrawingEnabled(true)
			v.Tools.SetColor(hex)
		}))
	}

	history := container.NewHBox(
		widget.NewButtonWithIcon("", theme.ContentUndoIcon(), v.Undo),
		widget.NewButtonWithIcon("", theme.ContentRedoIcon(), v.Redo),
		widget.NewButtonWithIcon("", theme.DeleteIcon(), v.ClearPage),
	)

	pages := container.NewHBox(
		widget.NewButtonWithIcon("", theme.NavigateBackIcon(), v.PrevPage),
		v.pageLabel,
		widget.NewButtonWithIcon("", theme.NavigateNextIcon(), v.NextPage),
	)

	zoom := container.NewHBox(
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), v.ZoomOut),
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), v.ZoomIn),
		widget.NewButtonWithIcon("", theme.ZoomFitIcon(), fitWidth),
	)

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), v.Export)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		history,
		widget.NewSeparator(),
		pages,
		widget.NewSeparator(),
		zoom,
		layout.NewSpacer(),
		exportBtn,
	)
}
