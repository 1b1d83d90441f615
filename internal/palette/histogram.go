// Package palette turns raw escape counts into colors: a histogram
// equalization pass spreads counts evenly over the color range, and a
// palette maps each normalized count to an RGB triple.
package palette

import "math"

// Equalize redistributes escape counts across [0, maxIter] by
// cumulative-histogram equalization. The histogram covers counts in
// [0, maxIter) only; counts equal to maxIter are set interior, carry no
// gradient information, and pass through unchanged. The result has the
// same length and order as counts and is monotonic: for a <= b < maxIter,
// out(a) <= out(b).
//
// When no count escaped (every input equals maxIter) the histogram is
// empty and every output is maxIter, so the image renders all black.
func Equalize(counts []int, maxIter int) []int {
	hist := make([]int, maxIter)
	for _, n := range counts {
		if n < maxIter {
			hist[n]++
		}
	}

	cumul := make([]int, maxIter)
	sum := 0
	for i, h := range hist {
		sum += h
		cumul[i] = sum
	}

	out := make([]int, len(counts))
	total := cumul[maxIter-1]
	if total == 0 {
		for i := range out {
			out[i] = maxIter
		}
		return out
	}

	div := float64(total) / float64(maxIter)
	for i, n := range counts {
		if n == maxIter {
			out[i] = maxIter
			continue
		}
		out[i] = int(math.Ceil(float64(cumul[n]) / div))
	}
	return out
}
