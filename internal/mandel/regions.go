package mandel

// Region is a rectangular window of the complex plane.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 { return r.XMax - r.XMin }

// Height returns the vertical extent of the region.
func (r Region) Height() float64 { return r.YMax - r.YMin }

// Degenerate reports whether either interval has zero width, which
// would make pixel-to-plane mapping impossible.
func (r Region) Degenerate() bool {
	return r.XMin == r.XMax || r.YMin == r.YMax
}

// ZoomOut returns the region with both axis ranges doubled around their
// midpoints.
func (r Region) ZoomOut() Region {
	return Region{
		XMin: zoomMin(r.XMin, r.XMax), XMax: zoomMax(r.XMin, r.XMax),
		YMin: zoomMin(r.YMin, r.YMax), YMax: zoomMax(r.YMin, r.YMax),
	}
}

func zoomMin(min, max float64) float64 {
	d := max - min
	return (min+max)/2 - d
}

func zoomMax(min, max float64) float64 {
	d := max - min
	return (min+max)/2 + d
}

// Home returns the default viewing region: x spanning [-2,2] with y
// aspect-corrected for a width-by-height pixel grid, centered on the
// origin.
func Home(width, height int) Region {
	half := 2.0 * float64(height) / float64(width)
	return Region{XMin: -2, XMax: 2, YMin: -half, YMax: half}
}

// Classic landmarks in the Mandelbrot set.
var (
	// Seahorse Valley, dense filaments and repeating seahorse curls
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// Elephant Valley, large bulb with trunk-like tendrils
	ElephantValley = Region{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// Spiral Minibrot, small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// Triple Spiral, threefold symmetric spiral structure
	TripleSpiral = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}

	// Valley of the Dragon, deep spiral filaments
	ValleyOfTheDragon = Region{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}
)

// Landmarks maps region names to their plane windows, in the order
// presented by the regions command.
var Landmarks = map[string]Region{
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"triple":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
}
