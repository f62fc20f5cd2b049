package hud

import (
	"math"
	"time"
)

// HUD-wide constants to avoid magic numbers scattered across the package.

// Animation timing
const (
	// BaseAnimationDuration is the reference duration the show/hide phase
	// durations are derived from
	BaseAnimationDuration = 300 * time.Millisecond

	// StrokeDrawDuration is how long the checkmark/cross stroke takes to draw
	StrokeDrawDuration = 600 * time.Millisecond

	// SpinnerCycleDuration is one full revolution of the loading spinner
	SpinnerCycleDuration = 900 * time.Millisecond

	// DefaultAutoHide is how long success/failure presentations stay on screen
	DefaultAutoHide = 1 * time.Second
)

// Card sizing
const (
	CardMinWidth     float32 = 120
	CardMinHeight    float32 = 120
	CardMaxWidth     float32 = 320
	CardPadding      float32 = 24
	CardCornerRadius float32 = 10

	IndicatorSize float32 = 48
	StrokeWidth   float32 = 4

	MessageTextSize float32 = 14
	MessageGap      float32 = 14
)

// Spinner geometry
const (
	SpinnerArcSweep    float32 = 3 * math.Pi / 2 // three quarters of a circle
	SpinnerArcSegments         = 24
)

// Card scale keyframes for the show/hide sequences
const (
	ScaleHidden     float32 = 0.001
	ScaleOvershoot  float32 = 1.1
	ScaleUndershoot float32 = 0.9
	ScaleSettled    float32 = 1.0
	ScaleDismissed  float32 = 0.1
)

// Mask appearance
const (
	// MaskBlendRatio is how far the mask color is blended toward black
	MaskBlendRatio = 0.6

	// DefaultMaskOpacity is the translucency of the fully shown mask
	DefaultMaskOpacity = 0.25
)

// Generation token prefix
const (
	GenerationPrefix = "hud-"
)
