package palette

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps a normalized escape count n in [0, maxIter) to an RGB
// triple. Interior points (n == maxIter) never reach a palette; the
// composer paints them black.
type Palette interface {
	At(n, maxIter int) (r, g, b uint8)
}

// Gradient interpolates between fixed keypoints in HCL space.
type Gradient struct {
	keypoints []keypoint
}

type keypoint struct {
	col colorful.Color
	pos float64
}

// At blends the two keypoints surrounding the normalized position.
func (g Gradient) At(n, maxIter int) (r, gr, b uint8) {
	t := float64(n) / float64(maxIter)
	c := g.keypoints[len(g.keypoints)-1].col
	for i := 0; i < len(g.keypoints)-1; i++ {
		k1, k2 := g.keypoints[i], g.keypoints[i+1]
		if k1.pos <= t && t <= k2.pos {
			c = k1.col.BlendHcl(k2.col, (t-k1.pos)/(k2.pos-k1.pos)).Clamped()
			break
		}
	}
	return c.RGB255()
}

func mustGradient(stops map[float64]string) Gradient {
	g := Gradient{keypoints: make([]keypoint, 0, len(stops))}
	for pos, hex := range stops {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic("bad gradient stop " + hex + ": " + err.Error())
		}
		g.keypoints = append(g.keypoints, keypoint{col: c, pos: pos})
	}
	sort.Slice(g.keypoints, func(i, j int) bool {
		return g.keypoints[i].pos < g.keypoints[j].pos
	})
	return g
}

var palettes = map[string]Palette{
	"hue": Hue{},
	"spectral": mustGradient(map[float64]string{
		0.0: "#9e0142", 0.1: "#d53e4f", 0.2: "#f46d43", 0.3: "#fdae61",
		0.4: "#fee090", 0.5: "#ffffbf", 0.6: "#e6f598", 0.7: "#abdda4",
		0.8: "#66c2a5", 0.9: "#3288bd", 1.0: "#5e4fa2",
	}),
	"ice": mustGradient(map[float64]string{
		0.0: "#03051a", 0.35: "#1b3b6f", 0.65: "#4f9dde", 0.85: "#bfe3f2", 1.0: "#ffffff",
	}),
}

// ByName looks up a palette by its config/CLI name.
func ByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette: %s (available: %v)", name, Names())
	}
	return p, nil
}

// Names lists the available palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
