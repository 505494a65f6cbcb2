// Package ray enumerates the points of a ray from the origin that can serve
// as integer-lattice candidates inside an annulus.
//
// A ray at angle θ is sampled twice. The x-scan walks integer x outward from
// the origin and computes y = tan(θ)·x. The y-scan walks integer y outward and
// computes x = y/tan(θ). Stepping only along x under-samples near-vertical
// rays, and stepping only along y under-samples near-horizontal ones, so the
// two scans are always concatenated.
//
// # Quadrants
//
// The scan direction follows the quadrant of θ:
//
//	Quadrant  angle       x-scan              y-scan
//	First     [0, 90)     1 .. max-1          1 .. max-1
//	Second    [90, 180)   -1 .. -(max-1)      1 .. max-1
//	Third     [180, 270)  -1 .. -(max-1)      -1 .. -(max-1)
//	Fourth    [270, 360)  1 .. max-1          -1 .. -(max-1)
//
// Angles lying exactly on an axis have a degenerate slope and must be handled
// by the caller before asking for candidates.
//
// # Bounds
//
// A sampled point is accepted only when its distance from the origin lies
// strictly between the lower and upper bound. Points exactly on either circle
// are rejected.
//
// All sequences are lazy and finite; each yields at most max-1 points.
package ray
