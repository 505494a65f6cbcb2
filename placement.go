package annulus

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Placement is an ordered set of placed coordinates, one per angle index.
// Each element is an {x, y} pair.
type Placement []f64.Vec2

// Points returns the placement as integer image points. Coordinates are
// rounded, which only matters when a fractional offset was used.
func (pl Placement) Points() []image.Point {
	pts := make([]image.Point, len(pl))
	for i, v := range pl {
		r := Pt(v[0], v[1]).Round()
		pts[i] = image.Pt(int(r.X), int(r.Y))
	}
	return pts
}

// Duplicates returns every coordinate that occurs more than once, each
// reported once in order of first appearance. Distinct angles can snap to
// the same lattice point when the annulus is narrow relative to the count;
// Place does not treat that as an error.
func (pl Placement) Duplicates() []f64.Vec2 {
	seen := make(map[f64.Vec2]int, len(pl))
	var dups []f64.Vec2
	for _, v := range pl {
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}
	return dups
}

// Place distributes count points around a centerpoint, equally separated by
// angle. The i-th point lies along the ray at AngleAt(count, i) and is
// snapped to the integer coordinate nearest that ray inside the annulus.
//
// Points on an axis (90°, 180°, 270°, 360°) are placed exactly at the
// minimum radius. All other points lie strictly between the minimum and
// maximum radius: among the ray samples in the annulus, the one closest to
// a lattice point wins, ties going to the one nearest the center. A sample
// whose rounded coordinate falls outside the annulus is passed over.
//
// Place returns an *IncompleteError, matching ErrGenerationIncomplete, when
// some angle has no candidate or when minimum >= maximum. Points are not
// guaranteed to be unique; see Placement.Duplicates.
//
// Example:
//
//	pts, err := annulus.Place(4)
//	// pts == {{0, 10}, {-10, 0}, {0, -10}, {10, 0}}
func Place(count int, opts ...Option) (Placement, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return place(count, o)
}

func place(count int, o options) (Placement, error) {
	log := Logger()

	if o.minimum >= o.maximum {
		err := &IncompleteError{Requested: count, Minimum: o.minimum, Maximum: o.maximum}
		log.Warn("annulus: empty annulus",
			"count", count, "minimum", o.minimum, "maximum", o.maximum)
		return nil, err
	}

	points := make([]Point, 0, max(count, 0))
	for i := range count {
		a := AngleAt(count, i)
		p, ok := placeAngle(a, o.minimum, o.maximum)
		if !ok {
			log.Warn("annulus: no candidate inside annulus",
				"angle", float64(a), "minimum", o.minimum, "maximum", o.maximum)
			continue
		}
		points = append(points, p)
	}

	result := make(Placement, 0, len(points))
	for _, p := range points {
		q := p.Add(o.offset)
		result = append(result, f64.Vec2{q.X, q.Y})
	}

	if len(result) != count {
		err := &IncompleteError{
			Requested: count,
			Generated: len(result),
			Minimum:   o.minimum,
			Maximum:   o.maximum,
		}
		log.Warn("annulus: generation incomplete",
			"requested", count, "generated", len(result))
		return nil, err
	}

	if dups := result.Duplicates(); len(dups) > 0 {
		log.Warn("annulus: coordinates are not unique",
			"count", count, "duplicates", len(dups))
	}

	return result, nil
}

// placeAngle returns the lattice point chosen for angle a, before offset.
func placeAngle(a Angle, minimum, maximum int) (Point, bool) {
	log := Logger()

	if dir, ok := a.Axis(); ok {
		p := Pt(float64(dir.X*minimum), float64(dir.Y*minimum))
		log.Debug("annulus: axis placement", "angle", float64(a), "x", p.X, "y", p.Y)
		return p, true
	}

	cands := Candidates(a, minimum, maximum)
	for _, c := range cands {
		p := c.Round()
		if !inAnnulus(p, minimum, maximum) {
			continue
		}
		log.Debug("annulus: ray placement",
			"angle", float64(a),
			"candidates", len(cands),
			"snap", c.Snap,
			"x", p.X, "y", p.Y)
		return p, true
	}
	return Point{}, false
}

// inAnnulus reports whether p lies strictly between the two circles.
func inAnnulus(p Point, minimum, maximum int) bool {
	d := p.Length()
	return d > math.Abs(float64(minimum)) && d < math.Abs(float64(maximum))
}
