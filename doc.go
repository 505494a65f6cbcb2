// Package annulus places points evenly around a centerpoint on the integer
// lattice.
//
// # Overview
//
// Given a count N, Place returns N integer coordinates separated by 360°/N.
// Every point lies inside an annulus, the ring between a minimum and a
// maximum radius, and is snapped to the lattice point that best fits its
// intended ray. The computation is pure and deterministic.
//
// # Quick Start
//
//	import "github.com/gogpu/annulus"
//
//	// Eight points between radius 10 and 20 around the origin
//	pts, err := annulus.Place(8)
//	if errors.Is(err, annulus.ErrGenerationIncomplete) {
//	    // Widen the annulus and retry
//	    pts, err = annulus.Place(8, annulus.WithBounds(10, 30))
//	}
//
// # Angles
//
// The i-th point (0-based) is placed at (360/N)·(i+1) degrees, so the last
// point always sits at 360°, on the positive X axis. Angles that fall on an
// axis are placed exactly at the minimum radius. Other angles are resolved by
// sampling the ray at integer x and integer y (see [Candidates]) and keeping
// the sample closest to a lattice point, ties going to the sample nearest
// the centerpoint.
//
// # Uniqueness
//
// Two angles may snap to the same lattice point when the annulus is narrow
// relative to N. Place does not reject such results; use
// [Placement.Duplicates] to detect them.
//
// # Logging
//
// annulus is silent by default. See [SetLogger].
package annulus
