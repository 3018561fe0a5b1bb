// File: render/example_test.go
package render_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/sandpile/render"
)

// ExampleEncode writes a 2×1 image as binary PPM.
func ExampleEncode() {
	img, _ := render.Image([]int{1, 3}, 2, 1)
	var buf bytes.Buffer
	_ = render.Encode(&buf, img, render.PPM)
	fmt.Printf("%q\n", buf.String())
	// Output: "P6\n2 1\n255\n\x00\xff\x00\xff\x00\x00"
}
