// Package geom provides the 2D geometric primitives shared by the chart
// packages: points, sizes and axis-aligned rectangles.
package geom

import "math"

// Point represents a 2D point or vector in screen coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Size represents a 2D extent.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectOf constructs a Rect from position and size.
func RectOf(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle,
// edges inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}
