package hud

// Package hud implements a transient status-overlay widget for Fyne windows:
// a centered card with a ring spinner, an animated checkmark or an animated
// cross, an optional message, and a translucent mask over the content below.
// The Controller owns presentation state and is safe to call from any
// goroutine; the Overlay widget observes it and drives the show/hide
// animation phases on the UI thread.
