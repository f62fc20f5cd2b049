package hud

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/statushud/statushud/shape"
)

// strokeMark draws the progressive checkmark or cross inside the card's
// indicator area. All mutation happens on the UI thread.
type strokeMark struct {
	widget.BaseWidget

	variant  Variant
	progress float32
	color    color.Color
	width    float32
}

func newStrokeMark() *strokeMark {
	m := &strokeMark{
		variant: VariantSuccess,
		color:   color.White,
		width:   StrokeWidth,
	}
	m.ExtendBaseWidget(m)
	return m
}

// SetVariant switches between the checkmark and the cross
func (m *strokeMark) SetVariant(variant Variant) {
	m.variant = variant
	m.Refresh()
}

// SetColor sets the stroke color
func (m *strokeMark) SetColor(strokeColor color.Color) {
	m.color = strokeColor
	m.Refresh()
}

// SetProgress moves the drawn fraction of the shape
func (m *strokeMark) SetProgress(progress float32) {
	m.progress = shape.Clamp01(progress)
	m.Refresh()
}

// path returns the current partial stroke for the given box size
func (m *strokeMark) path(size fyne.Size) shape.Path {
	if m.variant == VariantFailure {
		return shape.Cross(size, m.progress)
	}
	return shape.Checkmark(size, m.progress)
}

// CreateRenderer creates the widget renderer
func (m *strokeMark) CreateRenderer() fyne.WidgetRenderer {
	return &strokeMarkRenderer{mark: m}
}

// strokeMarkRenderer renders the partial path as canvas line segments
type strokeMarkRenderer struct {
	mark  *strokeMark
	lines []*canvas.Line
}

// Layout recomputes the line segments for the new size
func (r *strokeMarkRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

// MinSize returns the minimum size
func (r *strokeMarkRenderer) MinSize() fyne.Size {
	return fyne.NewSize(IndicatorSize, IndicatorSize)
}

// Refresh recomputes the segments from the current progress and color
func (r *strokeMarkRenderer) Refresh() {
	r.rebuild(r.mark.Size())
}

// Objects returns the line pool
func (r *strokeMarkRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(r.lines))
	for i, line := range r.lines {
		objects[i] = line
	}
	return objects
}

// Destroy cleans up the renderer
func (r *strokeMarkRenderer) Destroy() {}

// rebuild maps the current partial path onto the line pool; unused lines
// are hidden rather than removed
func (r *strokeMarkRenderer) rebuild(size fyne.Size) {
	path := r.mark.path(size)

	segments := make([][2]fyne.Position, 0, path.SegmentCount())
	for _, sub := range path.Subpaths {
		for i := 1; i < len(sub); i++ {
			segments = append(segments, [2]fyne.Position{sub[i-1], sub[i]})
		}
	}

	r.ensureLines(len(segments))
	for i, line := range r.lines {
		if i < len(segments) {
			line.Position1 = segments[i][0]
			line.Position2 = segments[i][1]
			line.StrokeColor = r.mark.color
			line.StrokeWidth = r.mark.width
			line.Show()
			line.Refresh()
		} else {
			line.Hide()
		}
	}
}

func (r *strokeMarkRenderer) ensureLines(count int) {
	for len(r.lines) < count {
		line := canvas.NewLine(r.mark.color)
		line.StrokeWidth = r.mark.width
		r.lines = append(r.lines, line)
	}
}
