package domain

import (
	"fmt"
	"math"
)

// Vec2 is a two-dimensional scale or size vector.
type Vec2 struct {
	X float64
	Y float64
}

// NewVec2 creates a Vec2 from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat creates a Vec2 with both components set to v.
func Splat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// Equal reports whether both components match within ratioEpsilon.
func (v Vec2) Equal(w Vec2) bool {
	return math.Abs(v.X-w.X) <= ratioEpsilon && math.Abs(v.Y-w.Y) <= ratioEpsilon
}

// IsSplat reports whether both components are equal within ratioEpsilon.
func (v Vec2) IsSplat() bool {
	return math.Abs(v.X-v.Y) <= ratioEpsilon
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// PixelPair is an integer pixel size, the conversion target for host
// windowing systems.
type PixelPair struct {
	Width  int
	Height int
}

func (p PixelPair) String() string {
	return fmt.Sprintf("%d x %d", p.Width, p.Height)
}
