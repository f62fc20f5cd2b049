package hud

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/statushud/statushud/shape"
)

// Spinner is the rotating ring-arc indicator shown while the HUD is in the
// loading state. It animates itself; callers only Start and Stop it.
type Spinner struct {
	widget.BaseWidget

	color   color.Color
	width   float32
	angle   float32
	anim    *fyne.Animation
	running bool
}

// NewSpinner creates a stopped spinner
func NewSpinner() *Spinner {
	sp := &Spinner{
		color: color.White,
		width: StrokeWidth,
	}
	sp.ExtendBaseWidget(sp)
	return sp
}

// SetColor sets the arc stroke color
func (sp *Spinner) SetColor(strokeColor color.Color) {
	sp.color = strokeColor
	sp.Refresh()
}

// Start begins the rotation; it is a no-op while already running
func (sp *Spinner) Start() {
	if sp.running {
		return
	}
	sp.running = true

	sp.anim = fyne.NewAnimation(SpinnerCycleDuration, func(f float32) {
		sp.angle = 2 * math.Pi * f
		sp.Refresh()
	})
	sp.anim.Curve = fyne.AnimationLinear
	sp.anim.RepeatCount = fyne.AnimationRepeatForever
	sp.anim.Start()
}

// Stop ends the rotation
func (sp *Spinner) Stop() {
	if !sp.running {
		return
	}
	sp.running = false

	if sp.anim != nil {
		sp.anim.Stop()
		sp.anim = nil
	}
}

// Running reports whether the rotation animation is active
func (sp *Spinner) Running() bool {
	return sp.running
}

// CreateRenderer creates the widget renderer
func (sp *Spinner) CreateRenderer() fyne.WidgetRenderer {
	return &spinnerRenderer{spinner: sp}
}

// spinnerRenderer renders the arc as a polyline of canvas line segments
type spinnerRenderer struct {
	spinner *Spinner
	lines   []*canvas.Line
}

// Layout recomputes the arc for the new size
func (r *spinnerRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

// MinSize returns the minimum size
func (r *spinnerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(IndicatorSize, IndicatorSize)
}

// Refresh recomputes the arc from the current angle and color
func (r *spinnerRenderer) Refresh() {
	r.rebuild(r.spinner.Size())
}

// Objects returns the line pool
func (r *spinnerRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(r.lines))
	for i, line := range r.lines {
		objects[i] = line
	}
	return objects
}

// Destroy cleans up the renderer
func (r *spinnerRenderer) Destroy() {}

func (r *spinnerRenderer) rebuild(size fyne.Size) {
	path := shape.Arc(size, r.spinner.angle, SpinnerArcSweep, SpinnerArcSegments)

	r.ensureLines(path.SegmentCount())
	index := 0
	for _, sub := range path.Subpaths {
		for i := 1; i < len(sub); i++ {
			line := r.lines[index]
			line.Position1 = sub[i-1]
			line.Position2 = sub[i]
			line.StrokeColor = r.spinner.color
			line.StrokeWidth = r.spinner.width
			line.Refresh()
			index++
		}
	}
}

func (r *spinnerRenderer) ensureLines(count int) {
	for len(r.lines) < count {
		line := canvas.NewLine(r.spinner.color)
		line.StrokeWidth = r.spinner.width
		r.lines = append(r.lines, line)
	}
}
