package statushud

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/statushud/statushud/hud"
)

var (
	mu         sync.Mutex
	controller *hud.Controller
	overlay    *hud.Overlay
)

// Install attaches a HUD to the window: the content is wrapped together with
// a new overlay, set as the window content, and the controller driving the
// overlay is returned. Installing again replaces the previous HUD.
func Install(win fyne.Window, content fyne.CanvasObject) *hud.Controller {
	mu.Lock()
	defer mu.Unlock()

	if overlay != nil {
		overlay.Detach()
	}

	c := hud.NewController()
	o := hud.NewOverlay(c)
	win.SetContent(hud.Wrap(content, o))

	controller = c
	overlay = o
	return c
}

// Uninstall disconnects the installed HUD. The wrapped content stays in the
// window; the overlay simply goes inert and invisible.
func Uninstall() {
	mu.Lock()
	defer mu.Unlock()

	if overlay != nil {
		overlay.Detach()
		overlay = nil
		controller = nil
	}
}

// Controller returns the controller of the installed HUD, or nil before
// Install has been called
func Controller() *hud.Controller {
	mu.Lock()
	defer mu.Unlock()
	return controller
}

// ShowLoading presents the spinner on the installed HUD. Like every facade
// function it is a safe no-op until Install has been called.
func ShowLoading(message string) {
	if c := Controller(); c != nil {
		c.ShowLoading(message)
	}
}

// ShowSuccess presents the checkmark on the installed HUD
func ShowSuccess(message string) {
	if c := Controller(); c != nil {
		c.ShowSuccess(message)
	}
}

// ShowFailure presents the cross on the installed HUD
func ShowFailure(message string) {
	if c := Controller(); c != nil {
		c.ShowFailure(message)
	}
}

// Show presents the installed HUD with full control over the request
func Show(req hud.ShowRequest) {
	if c := Controller(); c != nil {
		c.Show(req)
	}
}

// Hide dismisses the installed HUD
func Hide() {
	if c := Controller(); c != nil {
		c.Hide()
	}
}

// HideWithCallback dismisses the installed HUD and runs onDismiss once it is
// hidden
func HideWithCallback(onDismiss func()) {
	if c := Controller(); c != nil {
		c.HideWithCallback(onDismiss)
	}
}
