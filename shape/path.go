package shape

import (
	"math"

	"fyne.io/fyne/v2"
)

// Path is an ordered list of polyline subpaths. Each subpath is a run of
// connected points; separate subpaths are disconnected and must be rendered
// without an implicit joining line (the cross relies on this).
type Path struct {
	Subpaths [][]fyne.Position
}

// IsEmpty returns true if the path contains no drawable segment
func (p Path) IsEmpty() bool {
	return p.SegmentCount() == 0
}

// SegmentCount returns the number of line segments across all subpaths
func (p Path) SegmentCount() int {
	count := 0
	for _, sub := range p.Subpaths {
		if len(sub) > 1 {
			count += len(sub) - 1
		}
	}
	return count
}

// Length returns the total stroke length of the path
func (p Path) Length() float32 {
	var total float32
	for _, sub := range p.Subpaths {
		for i := 1; i < len(sub); i++ {
			total += Distance(sub[i-1], sub[i])
		}
	}
	return total
}

// Distance returns the euclidean distance between two points
func Distance(a, b fyne.Position) float32 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Lerp returns the point at fraction t along the segment from a to b
func Lerp(a, b fyne.Position, t float32) fyne.Position {
	return fyne.NewPos(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

// Clamp01 clamps v to the [0, 1] range
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fraction returns cur/length, treating a degenerate (zero or negative)
// length as fraction 0 so callers never divide by zero
func fraction(cur, length float32) float32 {
	if length <= 0 {
		return 0
	}
	return cur / length
}
