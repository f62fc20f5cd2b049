package hud

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// blocker is the transparent full-window layer behind the card that swallows
// pointer and touch input while the HUD disallows interaction with the
// content underneath. It is shown and hidden by the overlay; while hidden it
// is not an event target, which restores exact pass-through.
type blocker struct {
	widget.BaseWidget
}

func newBlocker() *blocker {
	b := &blocker{}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped swallows primary taps
func (b *blocker) Tapped(*fyne.PointEvent) {}

// TappedSecondary swallows secondary taps
func (b *blocker) TappedSecondary(*fyne.PointEvent) {}

// DoubleTapped swallows double taps
func (b *blocker) DoubleTapped(*fyne.PointEvent) {}

// Scrolled swallows scroll events
func (b *blocker) Scrolled(*fyne.ScrollEvent) {}

// MouseDown swallows raw mouse presses
func (b *blocker) MouseDown(*desktop.MouseEvent) {}

// MouseUp swallows raw mouse releases
func (b *blocker) MouseUp(*desktop.MouseEvent) {}

// MouseIn swallows hover entry
func (b *blocker) MouseIn(*desktop.MouseEvent) {}

// MouseMoved swallows hover movement
func (b *blocker) MouseMoved(*desktop.MouseEvent) {}

// MouseOut swallows hover exit
func (b *blocker) MouseOut() {}

// TouchDown swallows touch down events
func (b *blocker) TouchDown(*mobile.TouchEvent) {}

// TouchUp swallows touch up events
func (b *blocker) TouchUp(*mobile.TouchEvent) {}

// TouchCancel swallows touch cancel events
func (b *blocker) TouchCancel(*mobile.TouchEvent) {}

// CreateRenderer creates the widget renderer
func (b *blocker) CreateRenderer() fyne.WidgetRenderer {
	return &blockerRenderer{rect: canvas.NewRectangle(color.Transparent)}
}

// blockerRenderer draws nothing visible; the rectangle only gives the
// widget a paintable body
type blockerRenderer struct {
	rect *canvas.Rectangle
}

func (r *blockerRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *blockerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *blockerRenderer) Refresh() {
	r.rect.Refresh()
}

func (r *blockerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}

func (r *blockerRenderer) Destroy() {}
