package shape

import (
	"math"

	"fyne.io/fyne/v2"
)

// Checkmark key point ratios within the target rectangle
const (
	CheckStartXRatio = 0.25
	CheckStartYRatio = 0.50
	CheckDipXRatio   = 0.50
	CheckDipYRatio   = 0.75
	CheckEndXRatio   = 0.85
	CheckEndYRatio   = 0.25
)

// Cross diagonal corner ratios within the target rectangle
const (
	CrossMinRatio = 0.15
	CrossMaxRatio = 0.85
)

// Checkmark returns the partial checkmark stroke for the given rectangle size,
// drawn up to progress (clamped to [0,1]). The stroke runs from the left start
// point down to the dip and then up to the end point; progress is distributed
// over the two segments proportionally to their lengths, so the drawing speed
// is uniform along the whole stroke.
func Checkmark(size fyne.Size, progress float32) Path {
	p1 := fyne.NewPos(size.Width*CheckStartXRatio, size.Height*CheckStartYRatio)
	p2 := fyne.NewPos(size.Width*CheckDipXRatio, size.Height*CheckDipYRatio)
	p3 := fyne.NewPos(size.Width*CheckEndXRatio, size.Height*CheckEndYRatio)

	d12 := Distance(p1, p2)
	d23 := Distance(p2, p3)
	cur := Clamp01(progress) * (d12 + d23)

	if cur <= 0 {
		return Path{}
	}

	if cur <= d12 {
		return Path{Subpaths: [][]fyne.Position{
			{p1, Lerp(p1, p2, fraction(cur, d12))},
		}}
	}

	return Path{Subpaths: [][]fyne.Position{
		{p1, p2, Lerp(p2, p3, fraction(cur-d12, d23))},
	}}
}

// Cross returns the partial cross stroke for the given rectangle size, drawn
// up to progress (clamped to [0,1]). The first diagonal runs top-left to
// bottom-right and draws completely before the second (top-right to
// bottom-left) starts. The diagonals are separate subpaths; the renderer must
// not connect them.
func Cross(size fyne.Size, progress float32) Path {
	a1 := fyne.NewPos(size.Width*CrossMinRatio, size.Height*CrossMinRatio)
	a2 := fyne.NewPos(size.Width*CrossMaxRatio, size.Height*CrossMaxRatio)
	b1 := fyne.NewPos(size.Width*CrossMaxRatio, size.Height*CrossMinRatio)
	b2 := fyne.NewPos(size.Width*CrossMinRatio, size.Height*CrossMaxRatio)

	d1 := Distance(a1, a2)
	d2 := Distance(b1, b2)
	cur := Clamp01(progress) * (d1 + d2)

	if cur <= 0 {
		return Path{}
	}

	if cur <= d1 {
		return Path{Subpaths: [][]fyne.Position{
			{a1, Lerp(a1, a2, fraction(cur, d1))},
		}}
	}

	return Path{Subpaths: [][]fyne.Position{
		{a1, a2},
		{b1, Lerp(b1, b2, fraction(cur-d1, d2))},
	}}
}

// Arc returns a polyline approximation of a circular arc inscribed in the
// given rectangle size. startAngle and sweep are in radians, measured
// clockwise from the positive x axis; segments controls the smoothness and is
// raised to 1 if smaller. The spinner rotates one of these per frame.
func Arc(size fyne.Size, startAngle, sweep float32, segments int) Path {
	if segments < 1 {
		segments = 1
	}

	cx := size.Width / 2
	cy := size.Height / 2
	r := size.Width
	if size.Height < r {
		r = size.Height
	}
	r /= 2

	points := make([]fyne.Position, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(startAngle) + float64(sweep)*float64(i)/float64(segments)
		points = append(points, fyne.NewPos(
			cx+r*float32(math.Cos(angle)),
			cy+r*float32(math.Sin(angle)),
		))
	}

	return Path{Subpaths: [][]fyne.Position{points}}
}
