package ui

import (
	"launchericons/pkg/config"
	"launchericons/pkg/icon"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestNewPreviewContent(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	dir := t.TempDir()
	cfg := config.DefaultIconConfig()
	cfg.BaseDir = dir

	// Only the first bucket has icons on disk.
	first := cfg.Buckets[0]
	if err := os.MkdirAll(filepath.Join(dir, first.Folder), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range icon.Variants {
		if err := os.WriteFile(filepath.Join(dir, first.Folder, name), []byte{}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	content := NewPreviewContent(cfg)
	if len(content.Objects) != len(cfg.Buckets) {
		t.Fatalf("got %d cards; want %d", len(content.Objects), len(cfg.Buckets))
	}

	card := content.Objects[0].(*widget.Card)
	if card.Title != "mipmap-mdpi (48 px)" {
		t.Errorf("card title = %q", card.Title)
	}
	if _, ok := cellHead(t, card, 0).(*canvas.Image); !ok {
		t.Errorf("existing icon not shown as image")
	}

	missing := content.Objects[1].(*widget.Card)
	if label, ok := cellHead(t, missing, 1).(*widget.Label); !ok || label.Text != "missing" {
		t.Errorf("missing icon cell = %#v; want missing label", cellHead(t, missing, 1))
	}
}

func cellHead(t *testing.T, card *widget.Card, i int) fyne.CanvasObject {
	t.Helper()
	row := card.Content.(*fyne.Container)
	if len(row.Objects) != len(icon.Variants) {
		t.Fatalf("row has %d cells; want %d", len(row.Objects), len(icon.Variants))
	}
	return row.Objects[i].(*fyne.Container).Objects[0]
}

