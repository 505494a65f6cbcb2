package annulus

import "math"

// LatticeDistance returns the distance from (x, y) to the nearest of its four
// surrounding integer lattice points, found by flooring and ceiling each
// coordinate independently. It measures how far a point moves when rounded.
//
// A point already on the lattice returns 0 without further work.
func LatticeDistance(x, y float64) float64 {
	p := Pt(x, y)
	if p.IsLattice() {
		return 0
	}

	lx, hx := math.Floor(x), math.Ceil(x)
	ly, hy := math.Floor(y), math.Ceil(y)

	return min(
		p.Distance(Pt(hx, hy)),
		p.Distance(Pt(lx, hy)),
		p.Distance(Pt(lx, ly)),
		p.Distance(Pt(hx, ly)),
	)
}
