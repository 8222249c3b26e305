package chip8

import (
	"fmt"
	"strings"
)

const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a copy of the pixel grid indexed [y][x].
type Frame [DisplayHeight][DisplayWidth]bool

// String renders the frame with one character per pixel, mostly for tests
// and diagnostics.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range f {
		for _, on := range f[y] {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display is the 64x32 monochrome screen. Pixels change only through Toggle
// (XOR with a sprite bit) and Clear.
type Display struct {
	pixels Frame
}

func (d *Display) Get(x, y int) bool {
	checkPixel(x, y)
	return d.pixels[y][x]
}

func (d *Display) Set(x, y int, on bool) {
	checkPixel(x, y)
	d.pixels[y][x] = on
}

// Toggle flips the pixel at x,y and reports whether it was switched off.
func (d *Display) Toggle(x, y int) bool {
	on := d.Get(x, y)
	d.Set(x, y, !on)
	return on
}

func (d *Display) Clear() {
	d.pixels = Frame{}
}

// Frame returns a copy of the current pixel grid.
func (d *Display) Frame() Frame {
	return d.pixels
}

func checkPixel(x, y int) {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		panic(fmt.Sprintf("invalid pixel position x=%d y=%d, display is %dx%d", x, y, DisplayWidth, DisplayHeight))
	}
}
