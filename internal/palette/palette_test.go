package palette

import (
	"math"
	"testing"
)

func TestEqualize_Monotonic(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		maxIter int
	}{
		{"uniform", []int{0, 1, 2, 3, 4}, 10},
		{"clustered", []int{1, 1, 1, 1, 8, 9}, 10},
		{"with interior", []int{0, 3, 10, 5, 10, 7}, 10},
		{"single band", []int{4, 4, 4, 4}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Equalize(tt.counts, tt.maxIter)
			if len(out) != len(tt.counts) {
				t.Fatalf("length = %d, want %d", len(out), len(tt.counts))
			}
			for i, a := range tt.counts {
				for j, b := range tt.counts {
					if a <= b && b < tt.maxIter && out[i] > out[j] {
						t.Errorf("monotonicity violated: counts %d<=%d but %d>%d", a, b, out[i], out[j])
					}
				}
			}
		})
	}
}

func TestEqualize_InteriorPassthrough(t *testing.T) {
	out := Equalize([]int{0, 10, 5, 10}, 10)
	if out[1] != 10 || out[3] != 10 {
		t.Errorf("interior counts must stay maxIter, got %v", out)
	}
}

func TestEqualize_AllInterior(t *testing.T) {
	// nothing escaped: defined degenerate result is all maxIter, so
	// the image renders all black rather than erroring
	out := Equalize([]int{10, 10, 10}, 10)
	for i, v := range out {
		if v != 10 {
			t.Errorf("out[%d] = %d, want 10", i, v)
		}
	}
}

func TestEqualize_Range(t *testing.T) {
	counts := []int{0, 1, 1, 2, 5, 9, 10}
	out := Equalize(counts, 10)
	for i, v := range out {
		if v < 0 || v > 10 {
			t.Errorf("out[%d] = %d out of [0,10]", i, v)
		}
	}
	// the largest escaping count maps to the top of the range
	if out[5] != 10 {
		t.Errorf("top escaping count = %d, want 10", out[5])
	}
}

func TestHueRGB_PrimaryHues(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b float64
	}{
		{0, 1, 0, 0},
		{120, 0, 1, 0},
		{240, 0, 0, 1},
		{360, 1, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := HueRGB(tt.h)
		if math.Abs(r-tt.r) > 1e-12 || math.Abs(g-tt.g) > 1e-12 || math.Abs(b-tt.b) > 1e-12 {
			t.Errorf("HueRGB(%v) = (%v,%v,%v), want (%v,%v,%v)", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestHueRGB_InRange(t *testing.T) {
	for h := -30.0; h <= 400; h += 7.5 {
		r, g, b := HueRGB(h)
		for _, v := range []float64{r, g, b} {
			if v < 0 || v > 1 {
				t.Fatalf("HueRGB(%v) component %v out of [0,1]", h, v)
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%s): %v", name, err)
		}
		r, g, b := p.At(100, 512)
		_ = r
		_ = g
		_ = b
	}

	if _, err := ByName("nope"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestGradient_Endpoints(t *testing.T) {
	p, err := ByName("spectral")
	if err != nil {
		t.Fatal(err)
	}
	// zero and near-max normalized counts land on the first and last
	// keypoints respectively
	r0, g0, b0 := p.At(0, 100)
	if r0 == 0 && g0 == 0 && b0 == 0 {
		t.Error("gradient start should not be black")
	}
	r1, g1, b1 := p.At(100, 100)
	if r1 == 0 && g1 == 0 && b1 == 0 {
		t.Error("gradient end should not be black")
	}
}
