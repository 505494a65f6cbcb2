package annulus

import (
	"image"
	"math"
)

// axisTolerance is the largest |sin| or |cos| treated as zero when deciding
// whether an angle lies on a coordinate axis.
const axisTolerance = 1e-10

// Angle is a direction in degrees, measured counter-clockwise from +X.
type Angle float64

// AngleAt returns the angle of the i-th of count evenly spaced directions.
// Indexing starts one step past 0°, so the last direction is 360°.
func AngleAt(count, i int) Angle {
	return Angle(360 / float64(count) * float64(i+1))
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a) * (math.Pi / 180)
}

// Axis returns the unit lattice step along the coordinate axis a points to.
// It returns false when a is not within axisTolerance of an axis.
func (a Angle) Axis() (image.Point, bool) {
	sin, cos := math.Sincos(a.Radians())

	switch {
	case math.Abs(sin) < axisTolerance:
		if cos > 0 {
			return image.Pt(1, 0), true
		}
		return image.Pt(-1, 0), true
	case math.Abs(cos) < axisTolerance:
		if sin > 0 {
			return image.Pt(0, 1), true
		}
		return image.Pt(0, -1), true
	default:
		return image.Point{}, false
	}
}
