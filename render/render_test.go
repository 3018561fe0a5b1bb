// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/sandpile/render"
)

// TestColor checks the fixed palette, including out-of-range heights.
func TestColor(t *testing.T) {
	cases := []struct {
		v    int
		want color.RGBA
	}{
		{0, color.RGBA{0, 0, 0, 255}},
		{1, color.RGBA{0, 255, 0, 255}},
		{2, color.RGBA{0, 0, 255, 255}},
		{3, color.RGBA{255, 0, 0, 255}},
		{4, color.RGBA{0, 0, 0, 255}},
		{-1, color.RGBA{0, 0, 0, 255}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, render.Color(tc.v), "v=%d", tc.v)
	}
}

// TestImage paints one pixel per cell with x along the width.
func TestImage(t *testing.T) {
	img, err := render.Image([]int{0, 1, 2, 3, 1, 0}, 3, 2)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	require.Equal(t, render.Color(1), img.RGBAAt(1, 0))
	require.Equal(t, render.Color(3), img.RGBAAt(0, 1))

	_, err = render.Image([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, render.ErrDimensionMismatch)
	_, err = render.Image(nil, 0, 0)
	require.ErrorIs(t, err, render.ErrDimensionMismatch)
}

// TestEncodePPM checks the exact P6 byte stream.
func TestEncodePPM(t *testing.T) {
	img, err := render.Image([]int{1, 3}, 2, 1)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, img, render.PPM))

	want := append([]byte("P6\n2 1\n255\n"), 0, 255, 0, 255, 0, 0)
	require.Equal(t, want, buf.Bytes())
}

// TestEncodeDecoders encodes with every library format and decodes it back.
func TestEncodeDecoders(t *testing.T) {
	cells := []int{0, 1, 2, 3, 3, 2, 1, 0}
	img, err := render.Image(cells, 4, 2)
	require.NoError(t, err)

	decoders := map[render.Format]func(*bytes.Buffer) (image.Image, error){
		render.PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		render.BMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		render.TIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(bytes.NewReader(b.Bytes())) },
	}
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.Encode(&buf, img, f))
			got, err := decode(&buf)
			require.NoError(t, err)
			require.Equal(t, img.Bounds(), got.Bounds())
			for i, v := range cells {
				r, g, b, _ := got.At(i%4, i/4).RGBA()
				want := render.Color(v)
				require.Equal(t, []uint8{want.R, want.G, want.B}, []uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, "cell %d", i)
			}
		})
	}

	require.ErrorIs(t, render.Encode(&bytes.Buffer{}, img, render.Format(42)), render.ErrUnknownFormat)
}

// TestParseFormat accepts names and extensions in any case.
func TestParseFormat(t *testing.T) {
	for name, want := range map[string]render.Format{
		"ppm": render.PPM, ".PNG": render.PNG, "bmp": render.BMP, ".tif": render.TIFF, "TIFF": render.TIFF,
	} {
		got, err := render.ParseFormat(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	_, err := render.ParseFormat("gif")
	require.ErrorIs(t, err, render.ErrUnknownFormat)

	f, err := render.FormatFromPath("out/sandpile.ppm")
	require.NoError(t, err)
	require.Equal(t, render.PPM, f)
	_, err = render.FormatFromPath("sandpile")
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

// TestWriteFile writes a PPM and reports output failures.
func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandpile.ppm")
	require.NoError(t, render.WriteFile(path, []int{0, 3, 0, 3}, 2, 2))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, len("P6\n2 2\n255\n")+2*2*3)

	require.ErrorIs(t, render.WriteFile(filepath.Join(dir, "x.gif"), []int{0}, 1, 1), render.ErrUnknownFormat)
	require.ErrorIs(t, render.WriteFile(filepath.Join(dir, "bad.png"), []int{0}, 2, 2), render.ErrDimensionMismatch)
	require.Error(t, render.WriteFile(filepath.Join(dir, "missing", "x.png"), []int{0}, 1, 1))

	img, _ := render.Image([]int{1}, 1, 1)
	require.NoError(t, render.WriteImage(filepath.Join(dir, "one.bmp"), img))
}

// TestCaption draws white text inside the top strip and leaves the rest.
func TestCaption(t *testing.T) {
	cells := make([]int, 60*30)
	for i := range cells {
		cells[i] = 2
	}
	img, err := render.Image(cells, 60, 30)
	require.NoError(t, err)
	render.Caption(img, "sweeps: 5")

	white := 0
	for y := 0; y < 15; y++ {
		for x := 0; x < 60; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{255, 255, 255, 255}) {
				white++
			}
		}
	}
	require.Positive(t, white)
	require.Equal(t, render.Color(2), img.RGBAAt(30, 29))
}
