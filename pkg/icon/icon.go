// Package icon renders launcher icons by centering a logo on a solid background.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrInvalidSize = errors.New("icon size must be positive")

// Background is the default fill, #2C5F2D.
var Background = color.NRGBA{R: 44, G: 95, B: 45, A: 255}

const DefaultLogoFraction = 0.65

type Options struct {
	Background   color.Color
	LogoFraction float64
}

func DefaultOptions() Options {
	return Options{Background: Background, LogoFraction: DefaultLogoFraction}
}

// LogoSize is the edge length of the scaled logo, floor(size * fraction).
func LogoSize(size int, fraction float64) int {
	return int(float64(size) * fraction)
}

// Offset centers an inner square of logoSize inside size on one axis.
func Offset(size, logoSize int) int {
	return (size - logoSize) / 2
}

// Compose returns a size x size canvas filled with bg and the logo stretched to
// LogoSize(size, fraction) on both axes, pasted at the centering offset using the
// logo's alpha as mask. The mask applies to every channel, alpha included, so a
// half transparent logo pixel also leaves the canvas partly transparent.
func Compose(logo image.Image, size int, bg color.Color, fraction float64) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	logoSize := LogoSize(size, fraction)
	if logoSize <= 0 {
		return canvas
	}

	scaled := resize.Resize(uint(logoSize), uint(logoSize), withAlpha(logo), resize.Lanczos3)
	src := image.NewNRGBA(image.Rect(0, 0, logoSize, logoSize))
	draw.Draw(src, src.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	off := Offset(size, logoSize)
	paste(canvas, src, image.Pt(off, off))

	return canvas
}

// paste blends src onto dst at pt as out = src*a + dst*(1-a) per channel, with a
// taken from src's alpha. Pixels falling outside dst are dropped.
func paste(dst, src *image.NRGBA, pt image.Point) {
	r := src.Bounds().Add(pt.Sub(src.Bounds().Min)).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.PixOffset(x-pt.X+src.Bounds().Min.X, y-pt.Y+src.Bounds().Min.Y)
			d := dst.PixOffset(x, y)
			a := uint32(src.Pix[s+3])
			for c := 0; c < 4; c++ {
				v := uint32(src.Pix[s+c])*a + uint32(dst.Pix[d+c])*(255-a)
				dst.Pix[d+c] = uint8((v + 127) / 255)
			}
		}
	}
}

// withAlpha converts formats without an alpha channel (gray, YCbCr, paletted
// without transparency) to NRGBA; their pixels come out fully opaque.
func withAlpha(img image.Image) image.Image {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// LoadLogo decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG writes img without compression.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.NoCompression}
	return enc.Encode(w, img)
}

// Generate loads the logo from logoPath on every call, composes a size x size icon
// and writes it to outputPath, replacing any existing file. The parent directory of
// outputPath must already exist.
func Generate(logoPath, outputPath string, size int, opts Options) (err error) {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	logo, err := LoadLogo(logoPath)
	if err != nil {
		return err
	}

	img := Compose(logo, size, opts.Background, opts.LogoFraction)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close icon file: %w", cerr)
		}
	}()

	if err := EncodePNG(f, img); err != nil {
		return fmt.Errorf("failed to encode icon %s: %w", outputPath, err)
	}

	return nil
}
