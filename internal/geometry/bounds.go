// Package geometry implements the pure geometric predicate layer of the
// floor-plan editor: axis-aligned bounds, collision tests, and spatial
// queries over elements. Nothing in this package holds mutable state.
package geometry

import (
	"math"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// Bounds is an axis-aligned box.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MaxX returns the right edge of the box.
func (b Bounds) MaxX() float64 { return b.X + b.Width }

// MaxY returns the bottom edge of the box.
func (b Bounds) MaxY() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center of the box.
func (b Bounds) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center of the box.
func (b Bounds) CenterY() float64 { return b.Y + b.Height/2 }

// shrink erodes the box symmetrically by buffer on every side.
func (b Bounds) shrink(buffer float64) Bounds {
	return Bounds{
		X:      b.X + buffer,
		Y:      b.Y + buffer,
		Width:  b.Width - 2*buffer,
		Height: b.Height - 2*buffer,
	}
}

// intersects reports strict AABB overlap on both axes.
func (b Bounds) intersects(o Bounds) bool {
	return b.X < o.MaxX() && b.MaxX() > o.X &&
		b.Y < o.MaxY() && b.MaxY() > o.Y
}

// contains reports whether o lies fully inside b.
func (b Bounds) contains(o Bounds) bool {
	return o.X >= b.X && o.MaxX() <= b.MaxX() &&
		o.Y >= b.Y && o.MaxY() <= b.MaxY()
}

// containsPoint reports whether the point (x, y) lies inside b.
func (b Bounds) containsPoint(x, y float64) bool {
	return x >= b.X && x <= b.MaxX() && y >= b.Y && y <= b.MaxY()
}

// BoundsOf returns the minimal enclosing axis-aligned box of the element.
// For an unrotated element this is exactly its rectangle. For a rotated one
// the enclosing box is re-centered on the element's original center with
//
//	newWidth  = width*|cos th| + height*|sin th|
//	newHeight = width*|sin th| + height*|cos th|
func BoundsOf(e *types.Element) Bounds {
	if e.Rotation == 0 {
		return Bounds{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
	}
	rad := e.Rotation * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	w := e.Width*cos + e.Height*sin
	h := e.Width*sin + e.Height*cos
	return Bounds{
		X:      e.CenterX() - w/2,
		Y:      e.CenterY() - h/2,
		Width:  w,
		Height: h,
	}
}
