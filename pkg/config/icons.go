package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultIconConfigPath = "config/icons.json"
	defaultLogoPath       = "company_logo.png"
	defaultBaseDir        = "android/app/src/main/res"
	defaultBackground     = "#2C5F2D"
	defaultLogoFraction   = 0.65
)

// Bucket is one Android density folder and the icon edge length it needs.
type Bucket struct {
	Folder string `json:"folder"`
	Size   int    `json:"size"`
}

// DefaultBuckets returns the launcher sizes for mdpi through xxxhdpi, in order.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Folder: "mipmap-mdpi", Size: 48},
		{Folder: "mipmap-hdpi", Size: 72},
		{Folder: "mipmap-xhdpi", Size: 96},
		{Folder: "mipmap-xxhdpi", Size: 144},
		{Folder: "mipmap-xxxhdpi", Size: 192},
	}
}

type IconConfig struct {
	LogoPath     string   `json:"logo_path"`
	BaseDir      string   `json:"base_dir"`
	Background   string   `json:"background"`
	LogoFraction float64  `json:"logo_fraction"`
	Buckets      []Bucket `json:"buckets,omitempty"`
}

func DefaultIconConfig() IconConfig {
	return IconConfig{
		LogoPath:     defaultLogoPath,
		BaseDir:      defaultBaseDir,
		Background:   defaultBackground,
		LogoFraction: defaultLogoFraction,
		Buckets:      DefaultBuckets(),
	}
}

func ResolveIconConfigPath() string {
	if fromEnv := os.Getenv("ICONGEN_CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultIconConfigPath
}

// LoadIconConfig reads path as JSON on top of the defaults. A missing file is not
// an error: the compiled-in defaults are returned as is.
func LoadIconConfig(path string) (IconConfig, error) {
	cfg := DefaultIconConfig()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	// Buckets from the file replace the table rather than merge into it.
	cfg.Buckets = nil
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return DefaultIconConfig(), err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *IconConfig) applyDefaults() {
	if c.LogoPath == "" {
		c.LogoPath = defaultLogoPath
	}
	if c.BaseDir == "" {
		c.BaseDir = defaultBaseDir
	}
	if c.Background == "" {
		c.Background = defaultBackground
	}
	if c.LogoFraction == 0 {
		c.LogoFraction = defaultLogoFraction
	}
	if len(c.Buckets) == 0 {
		c.Buckets = DefaultBuckets()
	}
}

func (c IconConfig) Validate() error {
	if c.LogoFraction <= 0 || c.LogoFraction > 1 {
		return fmt.Errorf("logo_fraction must be in (0, 1]: %g", c.LogoFraction)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Buckets))
	for _, b := range c.Buckets {
		if b.Folder == "" {
			return fmt.Errorf("bucket with size %d has no folder", b.Size)
		}
		if b.Size <= 0 {
			return fmt.Errorf("invalid size for %s: %d", b.Folder, b.Size)
		}
		if seen[b.Folder] {
			return fmt.Errorf("duplicate bucket folder: %s", b.Folder)
		}
		seen[b.Folder] = true
	}
	return nil
}

// BackgroundColor parses Background as #RRGGBB into an opaque color.
func (c IconConfig) BackgroundColor() (color.RGBA, error) {
	hex := strings.TrimPrefix(c.Background, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid background color: %q", c.Background)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid background color %q: %w", c.Background, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
