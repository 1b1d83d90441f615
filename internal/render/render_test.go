package render

import (
	"testing"

	"github.com/san-kum/fracview/internal/mandel"
	"github.com/san-kum/fracview/internal/palette"
)

func testComposer(t *testing.T, w, h, maxIter int) *Composer {
	t.Helper()
	c, err := New(w, h, maxIter, palette.Hue{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name          string
		w, h, maxIter int
	}{
		{"zero width", 0, 10, 100},
		{"zero height", 10, 0, 100},
		{"negative width", -1, 10, 100},
		{"zero maxIter", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, tt.maxIter, palette.Hue{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCounts_SmallGrid(t *testing.T) {
	c := testComposer(t, 4, 4, 10)
	region := mandel.Region{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

	counts, err := c.Counts(region)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(counts) != 16 {
		t.Fatalf("len = %d, want 16", len(counts))
	}

	// top-left maps to plane (-2,-2), which escapes immediately
	if counts[0] > 2 {
		t.Errorf("corner count = %d, want small", counts[0])
	}

	// pixel (2,2) maps to the origin, which never escapes
	if counts[2*4+2] != 10 {
		t.Errorf("center count = %d, want 10", counts[2*4+2])
	}
}

func TestRender_Buffer(t *testing.T) {
	c := testComposer(t, 8, 6, 50)
	region := mandel.Region{XMin: -2, XMax: 2, YMin: -1.5, YMax: 1.5}

	f, err := c.Render(region)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if f.Width != 8 || f.Height != 6 {
		t.Errorf("frame size = %dx%d, want 8x6", f.Width, f.Height)
	}
	if len(f.Pix) != 8*6*4 {
		t.Fatalf("buffer length = %d, want %d", len(f.Pix), 8*6*4)
	}

	for i := 3; i < len(f.Pix); i += 4 {
		if f.Pix[i] != 255 {
			t.Fatalf("alpha at offset %d = %d, want 255", i, f.Pix[i])
		}
	}
}

func TestRender_InteriorIsBlack(t *testing.T) {
	c := testComposer(t, 5, 5, 20)
	region := mandel.Region{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

	counts, err := c.Counts(region)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	f, err := c.Render(region)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	sawInterior := false
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if counts[y*5+x] != 20 {
				continue
			}
			sawInterior = true
			r, g, b, _ := f.RGBAAt(x, y)
			if r != 0 || g != 0 || b != 0 {
				t.Errorf("interior pixel (%d,%d) = (%d,%d,%d), want black", x, y, r, g, b)
			}
		}
	}
	if !sawInterior {
		t.Fatal("expected at least one interior pixel over [-2,2]^2")
	}
}

func TestRender_AllInteriorIsAllBlack(t *testing.T) {
	// a window entirely inside the main cardioid
	c := testComposer(t, 4, 4, 30)
	region := mandel.Region{XMin: -0.1, XMax: 0.1, YMin: -0.1, YMax: 0.1}

	f, err := c.Render(region)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := f.RGBAAt(x, y)
			if r != 0 || g != 0 || b != 0 || a != 255 {
				t.Errorf("pixel (%d,%d) = (%d,%d,%d,%d), want opaque black", x, y, r, g, b, a)
			}
		}
	}
}

func TestRender_DegenerateRegion(t *testing.T) {
	c := testComposer(t, 4, 4, 10)
	if _, err := c.Render(mandel.Region{XMin: 1, XMax: 1, YMin: -1, YMax: 1}); err == nil {
		t.Error("expected error for degenerate region")
	}
}
