package hud

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestSpinner_StartStop(t *testing.T) {
	test.NewApp()
	sp := NewSpinner()

	if sp.Running() {
		t.Error("Expected a new spinner to be stopped")
	}

	sp.Start()
	if !sp.Running() {
		t.Error("Expected the spinner to run after Start")
	}

	sp.Start()
	if !sp.Running() {
		t.Error("Expected a repeated Start to keep the spinner running")
	}

	sp.Stop()
	if sp.Running() {
		t.Error("Expected the spinner to stop after Stop")
	}
	if sp.anim != nil {
		t.Error("Expected the animation released after Stop")
	}

	sp.Stop()
}

func TestSpinner_RendererDrawsArcSegments(t *testing.T) {
	test.NewApp()
	sp := NewSpinner()
	r := test.WidgetRenderer(sp)
	sp.Resize(fyne.NewSize(IndicatorSize, IndicatorSize))

	if len(r.Objects()) != SpinnerArcSegments {
		t.Errorf("Arc line count = %d, expected %d", len(r.Objects()), SpinnerArcSegments)
	}
	if size := r.MinSize(); size.Width != IndicatorSize || size.Height != IndicatorSize {
		t.Errorf("Spinner min size = %v, expected %gx%g", size, IndicatorSize, IndicatorSize)
	}
}
