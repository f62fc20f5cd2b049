package statushud

// Package statushud provides a transient status overlay for Fyne windows: a
// centered card with a spinner, checkmark or cross over a translucent mask.
// The package-level functions drive a single installed HUD; use the hud
// package directly to manage several windows independently.
