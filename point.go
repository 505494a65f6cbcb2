package annulus

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a 2D point with real coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return fromVec(r2.Add(p.vec(), q.vec()))
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return fromVec(r2.Sub(p.vec(), q.vec()))
}

// Length returns the distance of the point from the origin.
func (p Point) Length() float64 {
	return r2.Norm(p.vec())
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(q.vec(), p.vec()))
}

// Round returns the point with each coordinate rounded to the nearest
// integer. Halves round to even.
func (p Point) Round() Point {
	return Point{X: math.RoundToEven(p.X), Y: math.RoundToEven(p.Y)}
}

// IsLattice reports whether both coordinates are integers.
func (p Point) IsLattice() bool {
	return isInteger(p.X) && isInteger(p.Y)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return p.Distance(q)
}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

func isInteger(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}
