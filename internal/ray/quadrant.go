package ray

import "fmt"

// Quadrant identifies which quarter of the plane a ray points into.
type Quadrant uint8

const (
	// None is returned for angles outside [0, 360).
	None Quadrant = iota
	// First is the top-right quadrant, angles in [0, 90).
	First
	// Second is the top-left quadrant, angles in [90, 180).
	Second
	// Third is the bottom-left quadrant, angles in [180, 270).
	Third
	// Fourth is the bottom-right quadrant, angles in [270, 360).
	Fourth
)

// Classify returns the quadrant of an angle given in degrees.
func Classify(deg float64) Quadrant {
	switch {
	case deg < 0:
		return None
	case deg < 90:
		return First
	case deg < 180:
		return Second
	case deg < 270:
		return Third
	case deg < 360:
		return Fourth
	default:
		return None
	}
}

// Steps returns the direction in which the x-scan and y-scan walk away from
// the origin. Both are zero for None.
func (q Quadrant) Steps() (sx, sy int) {
	switch q {
	case First:
		return 1, 1
	case Second:
		return -1, 1
	case Third:
		return -1, -1
	case Fourth:
		return 1, -1
	default:
		return 0, 0
	}
}

// String returns the quadrant name.
func (q Quadrant) String() string {
	switch q {
	case None:
		return "None"
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	case Fourth:
		return "Fourth"
	default:
		return fmt.Sprintf("Quadrant(%d)", uint8(q))
	}
}
