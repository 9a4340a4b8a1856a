package svg

import (
	"fmt"
	"math"
)

// MinSpan is the smallest viewbox extent accepted without a warning.
const MinSpan = 1.0e-10

// Point is a coordinate pair, either in viewbox or in canvas space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Viewbox is the logical rectangle mapped onto the canvas.
type Viewbox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Degenerate reports whether either axis has a (near) zero span.
func (v Viewbox) Degenerate() bool {
	return math.Abs(v.MaxX-v.MinX) < MinSpan || math.Abs(v.MaxY-v.MinY) < MinSpan
}

func (v Viewbox) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", v.MinX, v.MinY, v.MaxX, v.MaxY)
}

// Transform maps viewbox coordinates onto a Width x Height canvas whose
// origin is the top-left corner. Increasing Y in the viewbox moves up on
// the canvas.
type Transform struct {
	View   Viewbox
	Width  float64
	Height float64
}

// NewTransform returns the identity-like mapping of (0,0,w,h) onto a w x h canvas.
func NewTransform(width, height int) Transform {
	w, h := float64(width), float64(height)
	return Transform{
		View:   Viewbox{MinX: 0, MinY: 0, MaxX: w, MaxY: h},
		Width:  w,
		Height: h,
	}
}

// Apply converts p to canvas coordinates. Points outside the viewbox are
// not clamped.
func (t Transform) Apply(p Point) Point {
	s := (p.X - t.View.MinX) / (t.View.MaxX - t.View.MinX)
	u := (p.Y - t.View.MinY) / (t.View.MaxY - t.View.MinY)
	return Point{
		X: s * t.Width,
		Y: (1.0 - u) * t.Height,
	}
}

// Invert converts a canvas point back into viewbox coordinates.
func (t Transform) Invert(p Point) Point {
	s := p.X / t.Width
	u := 1.0 - p.Y/t.Height
	return Point{
		X: t.View.MinX + s*(t.View.MaxX-t.View.MinX),
		Y: t.View.MinY + u*(t.View.MaxY-t.View.MinY),
	}
}
