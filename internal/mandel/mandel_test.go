package mandel

import (
	"math"
	"testing"
)

func TestEscape_OriginIsInterior(t *testing.T) {
	for _, maxIter := range []int{1, 10, 100, 1000} {
		if got := Escape(0, 0, maxIter); got != maxIter {
			t.Errorf("Escape(0,0,%d) = %d, want %d", maxIter, got, maxIter)
		}
	}
}

func TestEscape_FastOutsideDisk(t *testing.T) {
	for _, x := range []float64{2.1, 3, 10, -2.1, -5} {
		if got := Escape(x, 0, 100); got > 5 {
			t.Errorf("Escape(%v,0,100) = %d, want <= 5", x, got)
		}
	}
}

func TestEscape_SeededOrbit(t *testing.T) {
	// the orbit starts at (x, y), so a point already outside the
	// escape radius returns 0 without iterating
	if got := Escape(-2, -2, 10); got != 0 {
		t.Errorf("Escape(-2,-2,10) = %d, want 0", got)
	}

	// known boundary point: c = -2 stays on the real axis forever
	if got := Escape(-2, 0, 1000); got != 1000 {
		t.Errorf("Escape(-2,0,1000) = %d, want 1000", got)
	}
}

func TestEscape_Range(t *testing.T) {
	maxIter := 50
	for x := -2.5; x <= 2.5; x += 0.25 {
		for y := -2.5; y <= 2.5; y += 0.25 {
			n := Escape(x, y, maxIter)
			if n < 0 || n > maxIter {
				t.Fatalf("Escape(%v,%v,%d) = %d out of range", x, y, maxIter, n)
			}
		}
	}
}

func TestRegion_ZoomOut(t *testing.T) {
	tests := []struct {
		name   string
		region Region
	}{
		{"home", Region{XMin: -2, XMax: 2, YMin: -1.5, YMax: 1.5}},
		{"offset", Region{XMin: 0.25, XMax: 0.75, YMin: -0.4, YMax: -0.1}},
		{"deep", SpiralMinibrot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := tt.region.ZoomOut()

			if math.Abs(z.Width()-2*tt.region.Width()) > 1e-12 {
				t.Errorf("width = %v, want %v", z.Width(), 2*tt.region.Width())
			}
			if math.Abs(z.Height()-2*tt.region.Height()) > 1e-12 {
				t.Errorf("height = %v, want %v", z.Height(), 2*tt.region.Height())
			}

			oldMidX := (tt.region.XMin + tt.region.XMax) / 2
			newMidX := (z.XMin + z.XMax) / 2
			if math.Abs(newMidX-oldMidX) > 1e-12 {
				t.Errorf("x midpoint moved: %v -> %v", oldMidX, newMidX)
			}
			oldMidY := (tt.region.YMin + tt.region.YMax) / 2
			newMidY := (z.YMin + z.YMax) / 2
			if math.Abs(newMidY-oldMidY) > 1e-12 {
				t.Errorf("y midpoint moved: %v -> %v", oldMidY, newMidY)
			}
		})
	}
}

func TestHome_AspectCorrected(t *testing.T) {
	r := Home(800, 600)

	if r.XMin != -2 || r.XMax != 2 {
		t.Errorf("x range = [%v,%v], want [-2,2]", r.XMin, r.XMax)
	}
	wantRatio := 800.0 / 600.0
	gotRatio := r.Width() / r.Height()
	if math.Abs(gotRatio-wantRatio) > 1e-12 {
		t.Errorf("aspect ratio = %v, want %v", gotRatio, wantRatio)
	}
	if r.YMin != -r.YMax {
		t.Errorf("y range not centered: [%v,%v]", r.YMin, r.YMax)
	}
}

func TestRegion_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		want   bool
	}{
		{"normal", Region{XMin: -2, XMax: 2, YMin: -1, YMax: 1}, false},
		{"zero width", Region{XMin: 1, XMax: 1, YMin: -1, YMax: 1}, true},
		{"zero height", Region{XMin: -2, XMax: 2, YMin: 0.5, YMax: 0.5}, true},
		{"zero both", Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.region.Degenerate(); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLandmarks(t *testing.T) {
	for name, r := range Landmarks {
		if r.Degenerate() {
			t.Errorf("landmark %s is degenerate", name)
		}
		if r.XMin >= r.XMax || r.YMin >= r.YMax {
			t.Errorf("landmark %s has inverted bounds: %+v", name, r)
		}
	}
}
