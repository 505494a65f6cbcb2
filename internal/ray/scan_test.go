package ray

import (
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		deg  float64
		want Quadrant
	}{
		{-1, None},
		{0, First},
		{45, First},
		{89.999, First},
		{90, Second},
		{135, Second},
		{180, Third},
		{225, Third},
		{270, Fourth},
		{315, Fourth},
		{359.999, Fourth},
		{360, None},
		{400, None},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := Classify(tt.deg); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestQuadrant_Steps(t *testing.T) {
	tests := []struct {
		q      Quadrant
		sx, sy int
	}{
		{None, 0, 0},
		{First, 1, 1},
		{Second, -1, 1},
		{Third, -1, -1},
		{Fourth, 1, -1},
	}

	for _, tt := range tests {
		sx, sy := tt.q.Steps()
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("%v.Steps() = (%d, %d), want (%d, %d)", tt.q, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestQuadrant_StringUnknown(t *testing.T) {
	if got := Quadrant(9).String(); got != "Quadrant(9)" {
		t.Errorf("Quadrant(9).String() = %q", got)
	}
}

func TestXScan_StrictBounds(t *testing.T) {
	// Horizontal ray: points are (x, 0) at distance x.
	got := slices.Collect(XScan(First, 0, 3, 5))
	want := []r2.Vec{{X: 4, Y: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("XScan(First, 0, 3, 5) = %v, want %v", got, want)
	}
}

func TestYScan_ZeroSlope(t *testing.T) {
	got := slices.Collect(YScan(First, 0, 0, 5))
	if len(got) != 4 {
		t.Fatalf("YScan(First, 0, 0, 5) yielded %d points, want 4", len(got))
	}
	for i, p := range got {
		if p.X != 0 {
			t.Errorf("point %d: X = %v, want 0", i, p.X)
		}
		if p.Y != float64(i+1) {
			t.Errorf("point %d: Y = %v, want %d", i, p.Y, i+1)
		}
	}
}

func TestScan_Directions(t *testing.T) {
	tests := []struct {
		name   string
		deg    float64
		sx, sy float64
	}{
		{"first", 45, 1, 1},
		{"second", 135, -1, 1},
		{"third", 225, -1, -1},
		{"fourth", 315, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := slices.Collect(Candidates(tt.deg, 10, 20))
			if len(pts) != 14 {
				t.Fatalf("Candidates(%v, 10, 20) yielded %d points, want 14", tt.deg, len(pts))
			}
			for _, p := range pts {
				if math.Signbit(p.X) != (tt.sx < 0) || math.Signbit(p.Y) != (tt.sy < 0) {
					t.Errorf("point %v is outside quadrant %s", p, tt.name)
				}
				d := r2.Norm(p)
				if d <= 10 || d >= 20 {
					t.Errorf("point %v at distance %v, want (10, 20)", p, d)
				}
			}
		})
	}
}

func TestCandidates_Order(t *testing.T) {
	// At 0° both scans see the axis: x-scan first, then y-scan.
	pts := slices.Collect(Candidates(0, 10, 20))
	if len(pts) != 18 {
		t.Fatalf("Candidates(0, 10, 20) yielded %d points, want 18", len(pts))
	}
	if pts[0] != (r2.Vec{X: 11, Y: 0}) {
		t.Errorf("first candidate = %v, want {11 0}", pts[0])
	}
	if pts[9] != (r2.Vec{X: 0, Y: 11}) {
		t.Errorf("tenth candidate = %v, want {0 11}", pts[9])
	}
}

func TestCandidates_OutOfRange(t *testing.T) {
	if pts := slices.Collect(Candidates(360, 10, 20)); len(pts) != 0 {
		t.Errorf("Candidates(360, 10, 20) yielded %d points, want 0", len(pts))
	}
}

func TestCandidates_InvertedBounds(t *testing.T) {
	if pts := slices.Collect(Candidates(30, 20, 10)); len(pts) != 0 {
		t.Errorf("Candidates(30, 20, 10) yielded %v, want none", pts)
	}
}

func TestCandidates_EarlyStop(t *testing.T) {
	n := 0
	for range Candidates(30, 10, 20) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestSlope(t *testing.T) {
	if got := Slope(45); math.Abs(got-1) > 1e-12 {
		t.Errorf("Slope(45) = %v, want 1", got)
	}
	if got := Slope(0); got != 0 {
		t.Errorf("Slope(0) = %v, want 0", got)
	}
}
