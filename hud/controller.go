package hud

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ShowRequest describes one HUD presentation
type ShowRequest struct {
	Variant Variant
	Message string

	// Config overrides the controller defaults for this presentation.
	// Nil keeps the defaults; nil colors inside are filled from them.
	Config *Config

	// AutoHideAfter schedules a one-shot hide after the given delay.
	// Zero keeps the HUD up until an explicit hide.
	AutoHideAfter time.Duration

	// OnDismiss runs exactly once after this presentation ends, whether by
	// auto-hide or an explicit hide. A later show that replaces a live
	// presentation drops its callback without firing it.
	OnDismiss func()
}

// Controller owns the HUD presentation state and exposes it through a Store.
// All methods are safe to call from any goroutine. Overlapping shows do not
// queue or stack; the last call wins.
type Controller struct {
	mu        sync.Mutex
	store     *Store
	defaults  Config
	hideTimer *time.Timer
	onDismiss func() // pending callback for the live presentation
}

// NewController creates a controller with theme-derived default config
func NewController() *Controller {
	return &Controller{
		store:    NewStore(),
		defaults: DefaultConfig(),
	}
}

// Store returns the observable state store
func (c *Controller) Store() *Store {
	return c.store
}

// Current returns the latest state snapshot
func (c *Controller) Current() State {
	return c.store.Current()
}

// Defaults returns the config applied when a show request carries none
func (c *Controller) Defaults() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaults
}

// SetDefaults replaces the default config used by subsequent shows; nil
// colors keep their previous values
func (c *Controller) SetDefaults(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaults = cfg.normalized(c.defaults)
}

// ShowLoading presents the spinner; it stays up until an explicit hide
func (c *Controller) ShowLoading(message string) {
	c.Show(ShowRequest{Variant: VariantLoading, Message: message})
}

// ShowSuccess presents the checkmark and auto-hides after DefaultAutoHide
func (c *Controller) ShowSuccess(message string) {
	c.Show(ShowRequest{Variant: VariantSuccess, Message: message, AutoHideAfter: DefaultAutoHide})
}

// ShowFailure presents the cross and auto-hides after DefaultAutoHide
func (c *Controller) ShowFailure(message string) {
	c.Show(ShowRequest{Variant: VariantFailure, Message: message, AutoHideAfter: DefaultAutoHide})
}

// Show presents the HUD with the requested variant, message and config,
// unconditionally replacing whatever is currently showing. Any pending
// auto-hide for an earlier presentation is superseded and cannot fire
// against this one.
func (c *Controller) Show(req ShowRequest) {
	if req.Variant == "" {
		req.Variant = VariantLoading
	}

	c.mu.Lock()
	c.stopHideTimerLocked()
	c.onDismiss = req.OnDismiss

	cfg := c.defaults
	if req.Config != nil {
		cfg = req.Config.normalized(c.defaults)
	}

	generation := newGeneration()
	c.store.Set(State{
		Presented:  true,
		Variant:    req.Variant,
		Message:    req.Message,
		Config:     cfg,
		Generation: generation,
	})

	if req.AutoHideAfter > 0 {
		c.hideTimer = time.AfterFunc(req.AutoHideAfter, func() {
			c.autoHide(generation)
		})
	}
	c.mu.Unlock()

	log.Printf("HUD show: variant=%s message=%q autoHide=%v", req.Variant, req.Message, req.AutoHideAfter)
}

// Hide dismisses the HUD. It is a no-op when nothing is presented.
func (c *Controller) Hide() {
	c.hide(nil, "")
}

// HideWithCallback dismisses the HUD and runs onDismiss once it is hidden.
// When nothing is presented the callback is not invoked.
func (c *Controller) HideWithCallback(onDismiss func()) {
	c.hide(onDismiss, "")
}

// autoHide is the timer path into hide; the generation it captured at
// scheduling time guards against firing into a later, unrelated presentation
func (c *Controller) autoHide(generation string) {
	c.hide(nil, generation)
}

func (c *Controller) hide(onDismiss func(), generation string) {
	c.mu.Lock()
	current := c.store.Current()
	if !current.Presented {
		c.mu.Unlock()
		return
	}
	if generation != "" && current.Generation != generation {
		c.mu.Unlock()
		log.Printf("HUD auto-hide suppressed: presentation %s was superseded", generation)
		return
	}

	c.stopHideTimerLocked()
	pending := c.onDismiss
	c.onDismiss = nil

	current.Presented = false
	current.Generation = newGeneration()
	c.store.Set(current)
	c.mu.Unlock()

	// Dismiss callbacks fire after the state flips, never before
	if pending != nil {
		pending()
	}
	if onDismiss != nil {
		onDismiss()
	}

	log.Printf("HUD hide: variant=%s", current.Variant)
}

// stopHideTimerLocked cancels the pending auto-hide timer if any.
// Caller holds the mutex.
func (c *Controller) stopHideTimerLocked() {
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}

// newGeneration mints a unique token for one presentation using UUID v7 for
// better uniqueness and time ordering
func newGeneration() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(GenerationPrefix+"%d", time.Now().UnixNano())
	}
	return GenerationPrefix + id.String()
}
