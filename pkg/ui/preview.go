package ui

import (
	"errors"
	"fmt"
	"launchericons/pkg/config"
	"launchericons/pkg/icon"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const previewCellSize = 96

type PreviewApp struct {
	FyneApp fyne.App
	Window  fyne.Window
	Config  config.IconConfig
}

func NewPreviewApp(cfg config.IconConfig) *PreviewApp {
	a := app.NewWithID("com.github.launchericons.preview")
	w := a.NewWindow("Launcher Icons")
	w.Resize(fyne.NewSize(720, 520))

	pa := &PreviewApp{FyneApp: a, Window: w, Config: cfg}
	pa.Reload()
	return pa
}

// Reload re-reads the icons from disk.
func (pa *PreviewApp) Reload() {
	refresh := widget.NewButton("Reload", pa.Reload)
	pa.Window.SetContent(container.NewBorder(
		container.NewHBox(widget.NewLabel(pa.Config.BaseDir), refresh),
		nil, nil, nil,
		container.NewVScroll(NewPreviewContent(pa.Config)),
	))
}

func (pa *PreviewApp) Run() {
	pa.Window.ShowAndRun()
}

// NewPreviewContent lays out one card per density bucket with both launcher
// variants side by side.
func NewPreviewContent(cfg config.IconConfig) *fyne.Container {
	cards := make([]fyne.CanvasObject, 0, len(cfg.Buckets))
	for _, b := range cfg.Buckets {
		row := container.NewHBox()
		for _, name := range icon.Variants {
			row.Add(variantCell(filepath.Join(cfg.BaseDir, b.Folder, name), name))
		}
		title := fmt.Sprintf("%s (%d px)", b.Folder, b.Size)
		cards = append(cards, widget.NewCard(title, "", row))
	}
	return container.NewGridWrap(fyne.NewSize(2*previewCellSize+80, previewCellSize+110), cards...)
}

func variantCell(path, caption string) fyne.CanvasObject {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return container.NewVBox(widget.NewLabel("missing"), widget.NewLabel(caption))
	}

	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(previewCellSize, previewCellSize))
	return container.NewVBox(img, widget.NewLabel(caption))
}
