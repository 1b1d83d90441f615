// Package viewport owns the visible plane bounds and the selection
// gesture that drives pan/zoom. It is the only mutator of the bounds;
// the host environment talks to it through explicit transition methods
// and receives frames through the Surface port.
package viewport

import (
	"fmt"

	"github.com/san-kum/fracview/internal/mandel"
	"github.com/san-kum/fracview/internal/mapping"
	"github.com/san-kum/fracview/internal/render"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Rect is a selection rectangle in pixel space, corners as given by the
// gesture (not sorted).
type Rect struct {
	Start, End Point
}

// Surface is the port to the host rendering environment. Present blits
// a finished frame; DrawOverlayRect strokes a transient selection
// rectangle that the next Present overwrites.
type Surface interface {
	Present(f *render.Frame)
	DrawOverlayRect(r Rect)
}

type state int

const (
	idle state = iota
	selecting
)

// minSelectionPx is the gesture width below which a selection is
// treated as an accidental click and ignored.
const minSelectionPx = 2

// Controller reacts to pointer and key events, updates the plane
// bounds, and requests renders. One event is processed at a time; a
// render runs to completion before the next event is handled.
type Controller struct {
	comp    *render.Composer
	surface Surface

	bounds mandel.Region
	st     state

	// gesture state, valid only while selecting
	start       Point
	gestureFrom mandel.Region
}

// New creates a controller over the composer's pixel grid, starting at
// the given region in the Idle state.
func New(comp *render.Composer, surface Surface, initial mandel.Region) (*Controller, error) {
	if initial.Degenerate() {
		return nil, fmt.Errorf("initial region %+v: %w", initial, mapping.ErrDegenerateRange)
	}
	return &Controller{comp: comp, surface: surface, bounds: initial}, nil
}

// Bounds returns the current plane bounds.
func (c *Controller) Bounds() mandel.Region { return c.bounds }

// Selecting reports whether a selection gesture is in progress.
func (c *Controller) Selecting() bool { return c.st == selecting }

// Render composes the current bounds and presents the frame.
func (c *Controller) Render() error {
	f, err := c.comp.Render(c.bounds)
	if err != nil {
		return err
	}
	c.surface.Present(f)
	return nil
}

// aspect is the grid's width/height ratio; the selection rectangle's
// vertical extent is derived from its horizontal extent through it.
func (c *Controller) aspect() float64 {
	return float64(c.comp.Width) / float64(c.comp.Height)
}

// selectionEnd derives the locked-aspect end corner from the pointer's
// x-coordinate. The pointer's y is ignored.
func (c *Controller) selectionEnd(x float64) Point {
	return Point{X: x, Y: c.start.Y + (x-c.start.X)/c.aspect()}
}

// PointerDown starts a selection gesture, capturing the corner and the
// bounds in effect at gesture start.
func (c *Controller) PointerDown(x, y float64) {
	if c.st != idle {
		return
	}
	c.st = selecting
	c.start = Point{X: x, Y: y}
	c.gestureFrom = c.bounds
}

// PointerMove updates the transient selection overlay. Bounds are not
// touched until the gesture completes.
func (c *Controller) PointerMove(x, y float64) {
	if c.st != selecting {
		return
	}
	end := c.selectionEnd(x)
	if width(c.start, end) > minSelectionPx {
		c.surface.DrawOverlayRect(Rect{Start: c.start, End: end})
	}
}

// PointerUp finishes the gesture. A selection wider than the click
// threshold re-maps both corners into the plane using the bounds
// captured at gesture start and adopts them as the new bounds; anything
// narrower leaves the bounds alone. A re-render happens either way.
func (c *Controller) PointerUp(x, y float64) error {
	if c.st != selecting {
		return nil
	}
	c.st = idle

	end := c.selectionEnd(x)
	if width(c.start, end) > minSelectionPx {
		sel, err := c.invertSelection(c.start, end)
		if err != nil {
			return err
		}
		if !sel.Degenerate() {
			c.bounds = sel
		}
	}
	return c.Render()
}

// invertSelection maps both pixel-space corners back into the plane
// through the gesture-start bounds.
func (c *Controller) invertSelection(start, end Point) (mandel.Region, error) {
	from := c.gestureFrom
	w, h := float64(c.comp.Width), float64(c.comp.Height)

	x1, err := mapping.Map(0, w, from.XMin, from.XMax, start.X)
	if err != nil {
		return mandel.Region{}, err
	}
	x2, err := mapping.Map(0, w, from.XMin, from.XMax, end.X)
	if err != nil {
		return mandel.Region{}, err
	}
	y1, err := mapping.Map(0, h, from.YMin, from.YMax, start.Y)
	if err != nil {
		return mandel.Region{}, err
	}
	y2, err := mapping.Map(0, h, from.YMin, from.YMax, end.Y)
	if err != nil {
		return mandel.Region{}, err
	}
	return mandel.Region{XMin: x1, XMax: x2, YMin: y1, YMax: y2}, nil
}

// ZoomOut doubles both axis ranges around their midpoints and
// re-renders. Valid in any state; does not change state.
func (c *Controller) ZoomOut() error {
	c.bounds = c.bounds.ZoomOut()
	return c.Render()
}

// Jump abandons any gesture in progress and re-renders at the given
// region. Degenerate regions are rejected.
func (c *Controller) Jump(r mandel.Region) error {
	if r.Degenerate() {
		return fmt.Errorf("jump to %+v: %w", r, mapping.ErrDegenerateRange)
	}
	c.st = idle
	c.bounds = r
	return c.Render()
}

func width(start, end Point) float64 {
	w := end.X - start.X
	if w < 0 {
		w = -w
	}
	return w
}
