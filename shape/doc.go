package shape

// Package shape provides pure path geometry for HUD indicator shapes: the
// progressively drawn checkmark and cross strokes, and the arc used by the
// ring spinner. Functions are stateless and side-effect free; rendering is
// left to the widget layer.
