// Package export writes rendered frames to image files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/san-kum/fracview/internal/render"
)

// FrameImage wraps a frame as an image.RGBA sharing the same pixel
// buffer. The frame's layout is already the stdlib RGBA layout.
func FrameImage(f *render.Frame) *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// WritePNG encodes the frame to path.
func WritePNG(path string, f *render.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, FrameImage(f)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
