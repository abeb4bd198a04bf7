package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the main window and blocks until it closes. shareLink, when
// non-empty, is shown in the status bar so peers can join the session.
func RunApp(v *Viewer, shareLink string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("StudyInk - " + filepath.Base(v.Doc.Path()))
	myWindow.Resize(fyne.NewSize(1024, 768))

	scroll := container.NewScroll(container.NewCenter(v.pageWidget))
	fitWidth := func() {
		v.FitWidth(float64(scroll.Size().Width) - 16)
	}

	toolbar := NewToolbar(v, fitWidth)
	content := container.NewBorder(toolbar, v.status, nil, nil, scroll)

	if shareLink != "" {
		v.status.SetText("Share this session: " + shareLink)
	}

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
