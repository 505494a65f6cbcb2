package annulus

import (
	"cmp"
	"slices"

	"github.com/gogpu/annulus/internal/ray"
)

// Candidate is a ray point considered for placement, paired with its
// lattice-snap distance.
type Candidate struct {
	Point
	// Snap is LatticeDistance of the point.
	Snap float64
}

// NewCandidate returns a Candidate for p with Snap filled in.
func NewCandidate(p Point) Candidate {
	return Candidate{Point: p, Snap: LatticeDistance(p.X, p.Y)}
}

// Key returns the ranking key: the lattice-snap distance, then the distance
// from the origin.
func (c Candidate) Key() (snap, origin float64) {
	return c.Snap, c.Length()
}

// Candidates returns every point of the ray at angle a that lies strictly
// inside the annulus (minimum, maximum), sampled at integer x and then at
// integer y, in ranked order. Axis-aligned angles are the caller's concern;
// for them the result follows the quadrant the angle falls in.
func Candidates(a Angle, minimum, maximum int) []Candidate {
	var cands []Candidate
	for v := range ray.Candidates(float64(a), minimum, maximum) {
		cands = append(cands, NewCandidate(Pt(v.X, v.Y)))
	}
	rank(cands)
	return cands
}

// rank sorts candidates best first. Equal keys keep their generation order.
func rank(cands []Candidate) {
	slices.SortStableFunc(cands, compareCandidates)
}

func compareCandidates(a, b Candidate) int {
	as, ao := a.Key()
	bs, bo := b.Key()
	if c := cmp.Compare(as, bs); c != 0 {
		return c
	}
	return cmp.Compare(ao, bo)
}
