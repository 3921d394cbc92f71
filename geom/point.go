// Package geom implements the geometry primitives shared by every transform:
// pixel points, point lists, polygons and axis-aligned boxes.
package geom

import "github.com/g3n/meshwarp/math32"

// Point is an integer pixel coordinate (Y, X). Real-valued results of a
// projection are rounded to the nearest integer when stored in a Point.
type Point struct {
	Y int
	X int
}

// NewPoint rounds x and y to the nearest integer and returns a Point.
func NewPoint(x, y float32) Point {

	return Point{Y: int(math32.Round(y)), X: int(math32.Round(x))}
}

// Vec2 returns this point as a float32 2D vector in (x, y) order, suitable
// for feeding into math32 matrix/vector arithmetic.
func (p Point) Vec2() math32.Vector2 {

	return math32.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

// FromVec2 builds a Point from a float32 vector, rounding both components.
func FromVec2(v math32.Vector2) Point {

	return NewPoint(v.X, v.Y)
}

// Clip clamps this point's coordinates to lie within [0, width-1] x [0, height-1].
func (p Point) Clip(width, height int) Point {

	return Point{
		Y: math32.ClampInt(p.Y, 0, height-1),
		X: math32.ClampInt(p.X, 0, width-1),
	}
}

// Rescale maps this point from a (height, width) raster to a
// (rescaledHeight, rescaledWidth) raster, preserving relative position.
func (p Point) Rescale(height, width, rescaledHeight, rescaledWidth int) Point {

	y := int(math32.Round(float32(rescaledHeight) * float32(p.Y) / float32(height)))
	x := int(math32.Round(float32(rescaledWidth) * float32(p.X) / float32(width)))
	return Point{
		Y: math32.ClampInt(y, 0, rescaledHeight-1),
		X: math32.ClampInt(x, 0, rescaledWidth-1),
	}
}
