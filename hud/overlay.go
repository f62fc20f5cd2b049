package hud

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Overlay renders a controller's presentation state over the window content:
// a translucent mask, an input blocker and the centered status card. It
// subscribes to the controller's store and plays the show and hide sequences
// on the UI thread. While fully hidden the overlay neither draws nor
// receives events, so the content underneath stays exactly as interactive as
// it was before attaching.
type Overlay struct {
	widget.BaseWidget

	controller *Controller
	mask       *canvas.Rectangle
	blocker    *blocker
	card       *card
	seq        *sequencer

	state       State
	unsubscribe func()
}

// NewOverlay creates an overlay bound to the controller. Build it on the UI
// thread and place it over the window content with Wrap.
func NewOverlay(controller *Controller) *Overlay {
	o := &Overlay{
		controller: controller,
		mask:       canvas.NewRectangle(color.Transparent),
		blocker:    newBlocker(),
		card:       newCard(),
	}
	o.seq = newSequencer(o.applyAnimState)
	o.ExtendBaseWidget(o)
	o.Hide()
	o.blocker.Hide()

	o.unsubscribe = controller.Store().Subscribe(func(next State) {
		fyne.Do(func() {
			o.transition(next)
		})
	})

	// The controller may already be presenting; catch up straight away
	if current := controller.Current(); current.Presented {
		o.transition(current)
	}
	return o
}

// Wrap stacks the overlay over the window content; pass the result to
// window.SetContent
func Wrap(content fyne.CanvasObject, overlay *Overlay) fyne.CanvasObject {
	return container.NewStack(content, overlay)
}

// Controller returns the controller this overlay renders
func (o *Overlay) Controller() *Controller {
	return o.controller
}

// Detach disconnects the overlay from its controller and stops whatever is
// animating; call it before discarding an installed overlay
func (o *Overlay) Detach() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
	o.seq.stopAll()
	o.card.setRunning(false)
	o.Hide()
}

// transition feeds one state change into the card and the sequencer
func (o *Overlay) transition(next State) {
	prev := o.state
	o.state = next
	if next.Presented {
		o.card.SetPresentation(next.Variant, next.Message, next.Config)
	}
	o.seq.Transition(prev, next)
}

// applyAnimState pushes the sequencer's current values into the canvas
// objects. It runs on the UI thread, once per animation tick.
func (o *Overlay) applyAnimState() {
	anim := o.seq.anim

	if !anim.visible {
		o.card.setRunning(false)
		o.blocker.Hide()
		o.Hide()
		return
	}

	if !o.Visible() {
		o.Show()
	}

	o.mask.FillColor = withAlpha(o.state.Config.Mask, anim.maskOpacity)
	o.mask.Refresh()

	if o.state.Config.AllowUserInteraction {
		o.blocker.Hide()
	} else {
		o.blocker.Show()
	}

	o.card.SetOpacity(anim.cardOpacity)
	o.card.SetStroke(anim.stroke)
	o.card.setRunning(o.state.Variant == VariantLoading)
	o.positionCard(o.Size())
}

// positionCard centers the card at its animated scale
func (o *Overlay) positionCard(size fyne.Size) {
	natural := o.card.naturalSize()
	scale := o.seq.anim.cardScale
	scaled := fyne.NewSize(natural.Width*scale, natural.Height*scale)
	o.card.Resize(scaled)
	o.card.Move(fyne.NewPos((size.Width-scaled.Width)/2, (size.Height-scaled.Height)/2))
}

// CreateRenderer creates the widget renderer
func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	return &overlayRenderer{overlay: o}
}

type overlayRenderer struct {
	overlay *Overlay
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	r.overlay.mask.Move(fyne.NewPos(0, 0))
	r.overlay.mask.Resize(size)
	r.overlay.blocker.Move(fyne.NewPos(0, 0))
	r.overlay.blocker.Resize(size)
	r.overlay.positionCard(size)
}

// MinSize is zero so the overlay never inflates the content it covers
func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *overlayRenderer) Refresh() {
	r.overlay.mask.Refresh()
}

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.overlay.mask, r.overlay.blocker, r.overlay.card}
}

func (r *overlayRenderer) Destroy() {}
