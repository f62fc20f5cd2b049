package hud

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
)

// animState holds the per-cycle animated values the overlay renderer
// consumes. It is reset at the start of every show cycle and torn down at
// the end of every hide cycle.
type animState struct {
	visible     bool
	maskOpacity float32
	cardOpacity float32
	cardScale   float32
	stroke      float32
}

// phase is one timed leg of a show or hide sequence. The tick fraction is
// already eased by the curve when apply runs.
type phase struct {
	duration time.Duration
	curve    fyne.AnimationCurve
	apply    func(a *animState, f float32)
}

// lerp returns the value at fraction f between from and to
func lerp(from, to, f float32) float32 {
	return from + (to-from)*f
}

// appearPhases is the fixed pop-in sequence: fade in with a scale overshoot,
// pull back below rest size, then settle. Appearing always starts from the
// reset state, so the leg endpoints are constants.
func appearPhases() []phase {
	d1 := time.Duration(float64(BaseAnimationDuration) / 1.5)
	d2 := BaseAnimationDuration / 2
	d3 := BaseAnimationDuration / 2

	return []phase{
		{d1, fyne.AnimationEaseOut, func(a *animState, f float32) {
			a.maskOpacity = f
			a.cardOpacity = f
			a.cardScale = lerp(ScaleHidden, ScaleOvershoot, f)
		}},
		{d2, fyne.AnimationEaseInOut, func(a *animState, f float32) {
			a.cardScale = lerp(ScaleOvershoot, ScaleUndershoot, f)
		}},
		{d3, fyne.AnimationEaseInOut, func(a *animState, f float32) {
			a.cardScale = lerp(ScaleUndershoot, ScaleSettled, f)
		}},
	}
}

// disappearPhases mirrors the pop on the way out. A hide can interrupt a
// still-appearing card, so the first and last legs start from whatever
// values the cycle begins with.
func disappearPhases(from animState) []phase {
	d1 := time.Duration(float64(BaseAnimationDuration) / 1.5)
	d2 := BaseAnimationDuration / 2
	d3 := BaseAnimationDuration / 2

	return []phase{
		{d1, fyne.AnimationEaseInOut, func(a *animState, f float32) {
			a.maskOpacity = lerp(from.maskOpacity, 0, f)
			a.cardScale = lerp(from.cardScale, ScaleUndershoot, f)
		}},
		{d2, fyne.AnimationEaseInOut, func(a *animState, f float32) {
			a.cardScale = lerp(ScaleUndershoot, ScaleOvershoot, f)
		}},
		{d3, fyne.AnimationEaseInOut, func(a *animState, f float32) {
			a.cardOpacity = lerp(from.cardOpacity, 0, f)
			a.cardScale = lerp(ScaleOvershoot, ScaleDismissed, f)
		}},
	}
}

// sequencer drives the multi-phase show/hide animation for one overlay.
// It must only be used from the UI thread; the generation token it captures
// per cycle makes superseded phase chains and stroke animations die silently.
type sequencer struct {
	anim      animState
	activeGen string
	running   []*fyne.Animation
	onApply   func() // pushes anim into the renderer
}

func newSequencer(onApply func()) *sequencer {
	return &sequencer{
		anim:    animState{cardScale: ScaleHidden},
		onApply: onApply,
	}
}

// Transition reacts to a state change from the store
func (s *sequencer) Transition(prev, next State) {
	switch {
	case next.Presented && !prev.Presented:
		s.startAppear(next)
	case !next.Presented && prev.Presented:
		s.startDisappear(next)
	case next.Presented && prev.Presented && next.Generation != prev.Generation:
		s.replace(next)
	}
}

// startAppear forcibly resets the animation state and plays the pop-in
// sequence; a stroke variant concurrently draws its shape
func (s *sequencer) startAppear(st State) {
	s.stopAll()
	s.activeGen = st.Generation
	s.anim = animState{visible: true, cardScale: ScaleHidden}
	s.onApply()

	s.playPhases(st.Generation, appearPhases(), nil)
	if st.Variant.HasStroke() {
		s.playStroke(st.Generation)
	}
}

// startDisappear plays the pop-out sequence from the current values and
// tears the cycle down once the last leg completes
func (s *sequencer) startDisappear(st State) {
	s.stopAll()
	s.activeGen = st.Generation

	generation := st.Generation
	s.playPhases(generation, disappearPhases(s.anim), func() {
		s.finishDisappear(generation)
	})
}

// replace handles a show that arrives while already presented: the card
// stays settled on screen and only the stroke drawing restarts
func (s *sequencer) replace(st State) {
	s.stopAll()
	s.activeGen = st.Generation
	s.anim = animState{
		visible:     true,
		maskOpacity: 1,
		cardOpacity: 1,
		cardScale:   ScaleSettled,
	}
	s.onApply()

	if st.Variant.HasStroke() {
		s.playStroke(st.Generation)
	}
}

// playPhases runs the phase list in strict order: each leg's final tick
// starts the next, and done runs after the last one
func (s *sequencer) playPhases(generation string, phases []phase, done func()) {
	if len(phases) == 0 {
		if done != nil {
			done()
		}
		return
	}

	current := phases[0]
	anim := fyne.NewAnimation(current.duration, func(f float32) {
		if !s.applyPhase(generation, current, f) {
			return
		}
		if f >= 1 {
			s.playPhases(generation, phases[1:], done)
		}
	})
	anim.Curve = current.curve
	s.running = append(s.running, anim)
	anim.Start()
}

// applyPhase applies one eased tick; a stale generation is a no-op
func (s *sequencer) applyPhase(generation string, p phase, f float32) bool {
	if generation != s.activeGen {
		return false
	}
	p.apply(&s.anim, f)
	s.onApply()
	return true
}

// playStroke runs the linear stroke-progress track, parallel to and
// independent of the scale/opacity phases
func (s *sequencer) playStroke(generation string) {
	anim := fyne.NewAnimation(StrokeDrawDuration, func(f float32) {
		if generation != s.activeGen {
			return
		}
		s.anim.stroke = f
		s.onApply()
	})
	anim.Curve = fyne.AnimationLinear
	s.running = append(s.running, anim)
	anim.Start()
}

// finishDisappear tears down the cycle: overlay invisible, scale and stroke
// back to their initial values so the next show starts clean
func (s *sequencer) finishDisappear(generation string) {
	if generation != s.activeGen {
		return
	}
	s.anim = animState{cardScale: ScaleHidden}
	s.onApply()
	log.Printf("HUD dismissed: animation cycle %s complete", generation)
}

// stopAll stops every in-flight animation of the previous cycle
func (s *sequencer) stopAll() {
	for _, anim := range s.running {
		anim.Stop()
	}
	s.running = nil
}
