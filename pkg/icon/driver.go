package icon

import (
	"fmt"
	"io"
	"launchericons/pkg/config"
	"path/filepath"
)

const (
	LauncherFile      = "ic_launcher.png"
	RoundLauncherFile = "ic_launcher_round.png"
	summaryLine       = "All app icons created successfully!"
)

// Variants are written in this order for every bucket. The round icon is rendered
// exactly like the regular one.
var Variants = []string{LauncherFile, RoundLauncherFile}

// Run writes every variant for every bucket in cfg under cfg.BaseDir, reporting each
// file to out. It stops at the first failure, including a failed write to out, and
// returns the paths written so far.
func Run(cfg config.IconConfig, out io.Writer) ([]string, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	opts := Options{Background: bg, LogoFraction: cfg.LogoFraction}

	written := make([]string, 0, len(cfg.Buckets)*len(Variants))
	for _, b := range cfg.Buckets {
		for _, name := range Variants {
			path := filepath.Join(cfg.BaseDir, b.Folder, name)
			if err := Generate(cfg.LogoPath, path, b.Size, opts); err != nil {
				return written, fmt.Errorf("%s: %w", b.Folder, err)
			}
			written = append(written, path)
			if _, err := fmt.Fprintf(out, "Created: %s\n", path); err != nil {
				return written, fmt.Errorf("failed to report %s: %w", path, err)
			}
		}
	}

	if _, err := fmt.Fprintf(out, "\n%s\n", summaryLine); err != nil {
		return written, fmt.Errorf("failed to report summary: %w", err)
	}
	return written, nil
}
