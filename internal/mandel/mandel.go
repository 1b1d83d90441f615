// Package mandel computes escape iteration counts for points of the
// complex plane and defines the regions used to frame renders.
package mandel

// Escape returns the number of iterations of z <- z^2 + c, c = x+iy,
// before |z| exceeds 2, or maxIter if it never does within the budget.
//
// The orbit is seeded at (x, y) rather than (0, 0), which pre-applies
// the first iteration before the first magnitude check. Rendered output
// depends on this seeding, so it is kept as-is.
func Escape(x, y float64, maxIter int) int {
	a, b := x, y
	n := 0
	for n < maxIter {
		a2 := a * a
		b2 := b * b
		if a2+b2 > 4 {
			return n
		}
		b = 2*a*b + y
		a = a2 - b2 + x
		n++
	}
	return n
}
