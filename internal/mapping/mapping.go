// Package mapping provides affine range interpolation between pixel and
// plane coordinates.
package mapping

import (
	"errors"
	"fmt"
)

// ErrDegenerateRange is returned when a source interval has zero width.
var ErrDegenerateRange = errors.New("degenerate source range")

// Map linearly interpolates s from the interval [s1,s2] onto [t1,t2].
// Inputs outside [s1,s2] extrapolate; there is no clamping. The mapping
// is order-preserving when both intervals run the same direction and
// order-reversing otherwise.
func Map(s1, s2, t1, t2, s float64) (float64, error) {
	if s1 == s2 {
		return 0, fmt.Errorf("map [%g,%g] -> [%g,%g]: %w", s1, s2, t1, t2, ErrDegenerateRange)
	}
	return t1 + (s-s1)/(s2-s1)*(t2-t1), nil
}
