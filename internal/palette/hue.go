package palette

import "math"

// HueRGB converts a hue-like scalar into r, g, b components in [0,1]
// using the fixed-saturation, fixed-lightness HSL formula. The input is
// not wrapped to [0,360) by callers; the mod inside handles any range.
func HueRGB(h float64) (r, g, b float64) {
	return hueChannel(5, h), hueChannel(3, h), hueChannel(1, h)
}

func hueChannel(n float64, h float64) float64 {
	k := math.Mod(n+h/60, 6)
	v := math.Min(k, math.Min(4-k, 1))
	if v < 0 {
		v = 0
	}
	return 1 - v
}

// Hue is the default palette: normalized count scaled onto [0,255] and
// fed through HueRGB.
type Hue struct{}

// At maps a normalized escape count n < maxIter to an RGB triple.
func (Hue) At(n, maxIter int) (r, g, b uint8) {
	h := float64(n) / float64(maxIter) * 255
	fr, fg, fb := HueRGB(h)
	return uint8(fr * 255), uint8(fg * 255), uint8(fb * 255)
}
