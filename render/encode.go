// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	// PPM is binary Netpbm (P6) with maxval 255.
	PPM Format = iota
	PNG
	BMP
	TIFF
)

var formatNames = [...]string{PPM: "ppm", PNG: "png", BMP: "bmp", TIFF: "tiff"}

// String returns the lower-case format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat maps a name such as "png" or ".TIF" to its Format.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimPrefix(name, "."))
	if n == "tif" {
		n = "tiff"
	}
	for f, fn := range formatNames {
		if n == fn {
			return Format(f), nil
		}
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return 0, fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}
	return f, nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PPM:
		return encodePPM(w, img)
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("Encode(%s): %w", f, ErrUnknownFormat)
	}
}

// encodePPM writes a P6 header followed by one RGB triplet per pixel,
// row-major from the top-left corner.
func encodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	px := make([]byte, 3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			px[0], px[1], px[2] = byte(r>>8), byte(g>>8), byte(bl>>8)
			if _, err := bw.Write(px); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteFile renders a width×height buffer to path, choosing the encoding from
// the extension. A partial file is removed on failure.
func WriteFile(path string, cells []int, width, height int) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	img, err := Image(cells, width, height)
	if err != nil {
		return err
	}

	return writeImage(path, img, f)
}

// WriteImage encodes img to path, choosing the encoding from the extension.
func WriteImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return writeImage(path, img, f)
}

func writeImage(path string, img image.Image, f Format) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err = Encode(out, img, f); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err = out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("render: close %s: %w", path, err)
	}

	return nil
}
