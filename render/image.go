// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var palette = [...]color.RGBA{
	{0, 0, 0, 255},   // 0 black
	{0, 255, 0, 255}, // 1 green
	{0, 0, 255, 255}, // 2 blue
	{255, 0, 0, 255}, // 3 red
}

// Color returns the palette colour for a cell holding v grains.
func Color(v int) color.RGBA {
	if v < 0 || v >= len(palette) {
		return palette[0]
	}
	return palette[v]
}

// Image paints a width×height row-major buffer, one pixel per cell.
// Returns ErrDimensionMismatch if len(cells) != width*height or either side is
// below 1.
func Image(cells []int, width, height int) (*image.RGBA, error) {
	if width < 1 || height < 1 || len(cells) != width*height {
		return nil, fmt.Errorf("Image(%d cells, %dx%d): %w", len(cells), width, height, ErrDimensionMismatch)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, Color(cells[y*width+x]))
		}
	}

	return img, nil
}

// Caption draws text in white on a black strip along the top edge of img.
// Text that does not fit is clipped.
func Caption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	textHeight := face.Metrics().Height.Ceil()
	strip := image.Rect(0, 0, img.Bounds().Dx(), textHeight+2).Add(img.Bounds().Min)
	draw.Draw(img, strip, image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(img.Bounds().Min.X + 1),
			Y: fixed.I(img.Bounds().Min.Y + face.Metrics().Ascent.Ceil() + 1),
		},
	}
	d.DrawString(text)
}
