package ray

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Slope returns tan(deg) with deg given in degrees.
func Slope(deg float64) float64 {
	return math.Tan(deg * (math.Pi / 180))
}

// Candidates returns the x-scan followed by the y-scan for the ray at deg.
// The sequence is empty when deg is outside [0, 360).
func Candidates(deg float64, lower, upper int) iter.Seq[r2.Vec] {
	q := Classify(deg)
	slope := Slope(deg)
	return func(yield func(r2.Vec) bool) {
		for p := range XScan(q, slope, lower, upper) {
			if !yield(p) {
				return
			}
		}
		for p := range YScan(q, slope, lower, upper) {
			if !yield(p) {
				return
			}
		}
	}
}

// XScan samples the ray y = slope·x at integer x, walking away from the
// origin in the quadrant's x direction.
func XScan(q Quadrant, slope float64, lower, upper int) iter.Seq[r2.Vec] {
	sx, _ := q.Steps()
	return func(yield func(r2.Vec) bool) {
		for x := range walk(sx, upper) {
			p := r2.Vec{X: float64(x), Y: slope * float64(x)}
			if inside(p, lower, upper) && !yield(p) {
				return
			}
		}
	}
}

// YScan samples the ray x = y/slope at integer y, walking away from the
// origin in the quadrant's y direction. A zero slope pins x to 0.
func YScan(q Quadrant, slope float64, lower, upper int) iter.Seq[r2.Vec] {
	_, sy := q.Steps()
	return func(yield func(r2.Vec) bool) {
		for y := range walk(sy, upper) {
			var x float64
			if slope != 0 {
				x = float64(y) / slope
			}
			p := r2.Vec{X: x, Y: float64(y)}
			if inside(p, lower, upper) && !yield(p) {
				return
			}
		}
	}
}

// walk yields step, 2·step, ... while the magnitude stays below upper.
func walk(step, upper int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for n := 1; n < upper; n++ {
			if !yield(n * step) {
				return
			}
		}
	}
}

// inside reports whether p lies strictly between the two circles.
func inside(p r2.Vec, lower, upper int) bool {
	d := r2.Norm(p)
	return d > math.Abs(float64(lower)) && d < math.Abs(float64(upper))
}
