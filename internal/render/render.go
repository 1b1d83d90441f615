// Package render composes escape-time data into RGBA frames.
package render

import (
	"fmt"

	"github.com/san-kum/fracview/internal/mandel"
	"github.com/san-kum/fracview/internal/mapping"
	"github.com/san-kum/fracview/internal/palette"
)

// Frame is a W×H RGBA pixel buffer in row-major order, 4 bytes per
// pixel. It is the unit handed to whatever surface presents it.
type Frame struct {
	Width, Height int
	Pix           []byte
}

// NewFrame allocates an all-zero frame.
func NewFrame(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Pix: make([]byte, w*h*4)}
}

// RGBAAt returns the pixel at (x, y).
func (f *Frame) RGBAAt(x, y int) (r, g, b, a byte) {
	i := (y*f.Width + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// Composer renders a plane region onto a fixed pixel grid: one full
// escape-count pass, one equalization pass, one coloring pass. Grid
// size and iteration budget are fixed for the session.
type Composer struct {
	Width, Height int
	MaxIter       int
	Pal           palette.Palette
}

// New validates the grid dimensions and iteration budget.
func New(width, height, maxIter int, pal palette.Palette) (*Composer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid must be positive, got %dx%d", width, height)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("maxIter must be positive, got %d", maxIter)
	}
	return &Composer{Width: width, Height: height, MaxIter: maxIter, Pal: pal}, nil
}

// Counts evaluates the escape count of every pixel in row-major order.
func (c *Composer) Counts(r mandel.Region) ([]int, error) {
	if r.Degenerate() {
		return nil, fmt.Errorf("region %+v: %w", r, mapping.ErrDegenerateRange)
	}
	counts := make([]int, c.Width*c.Height)
	for row := 0; row < c.Height; row++ {
		y, err := mapping.Map(0, float64(c.Height), r.YMin, r.YMax, float64(row))
		if err != nil {
			return nil, err
		}
		for col := 0; col < c.Width; col++ {
			x, err := mapping.Map(0, float64(c.Width), r.XMin, r.XMax, float64(col))
			if err != nil {
				return nil, err
			}
			counts[row*c.Width+col] = mandel.Escape(x, y, c.MaxIter)
		}
	}
	return counts, nil
}

// Render produces a full frame for the region: counts, equalization,
// then per-pixel color. Interior pixels (normalized value == maxIter)
// are painted black; everything else goes through the palette.
func (c *Composer) Render(r mandel.Region) (*Frame, error) {
	counts, err := c.Counts(r)
	if err != nil {
		return nil, err
	}
	norm := palette.Equalize(counts, c.MaxIter)

	f := NewFrame(c.Width, c.Height)
	for i, n := range norm {
		o := i * 4
		if n == c.MaxIter {
			f.Pix[o], f.Pix[o+1], f.Pix[o+2] = 0, 0, 0
		} else {
			f.Pix[o], f.Pix[o+1], f.Pix[o+2] = c.Pal.At(n, c.MaxIter)
		}
		f.Pix[o+3] = 255
	}
	return f, nil
}
