package hud

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func visibleLines(r *strokeMarkRenderer) []*canvas.Line {
	visible := make([]*canvas.Line, 0, len(r.lines))
	for _, line := range r.lines {
		if line.Visible() {
			visible = append(visible, line)
		}
	}
	return visible
}

func TestStrokeMark_ProgressClamped(t *testing.T) {
	test.NewApp()
	m := newStrokeMark()

	m.SetProgress(1.5)
	if m.progress != 1 {
		t.Errorf("Progress after 1.5 = %f, expected clamp at 1", m.progress)
	}

	m.SetProgress(-0.5)
	if m.progress != 0 {
		t.Errorf("Progress after -0.5 = %f, expected clamp at 0", m.progress)
	}
}

func TestStrokeMark_RendererDrawsCheckmark(t *testing.T) {
	test.NewApp()
	m := newStrokeMark()
	r := test.WidgetRenderer(m).(*strokeMarkRenderer)
	m.Resize(fyne.NewSize(100, 100))

	m.SetProgress(1)
	visible := visibleLines(r)
	if len(visible) != 2 {
		t.Fatalf("Full checkmark line count = %d, expected 2", len(visible))
	}
	if !close32(visible[0].Position1.X, 25) || !close32(visible[0].Position1.Y, 50) {
		t.Errorf("Checkmark start = %v, expected (25, 50)", visible[0].Position1)
	}
	if !close32(visible[0].Position2.X, 50) || !close32(visible[0].Position2.Y, 75) {
		t.Errorf("Checkmark elbow = %v, expected (50, 75)", visible[0].Position2)
	}
	if !close32(visible[1].Position2.X, 85) || !close32(visible[1].Position2.Y, 25) {
		t.Errorf("Checkmark end = %v, expected (85, 25)", visible[1].Position2)
	}

	m.SetProgress(0.2)
	if n := len(visibleLines(r)); n != 1 {
		t.Errorf("Partial checkmark line count = %d, expected 1", n)
	}

	m.SetProgress(0)
	if n := len(visibleLines(r)); n != 0 {
		t.Errorf("Empty checkmark line count = %d, expected 0", n)
	}
}

func TestStrokeMark_RendererDrawsCross(t *testing.T) {
	test.NewApp()
	m := newStrokeMark()
	m.SetVariant(VariantFailure)
	r := test.WidgetRenderer(m).(*strokeMarkRenderer)
	m.Resize(fyne.NewSize(100, 100))

	m.SetProgress(0.25)
	if n := len(visibleLines(r)); n != 1 {
		t.Errorf("Quarter cross line count = %d, expected the first diagonal only", n)
	}

	m.SetProgress(1)
	visible := visibleLines(r)
	if len(visible) != 2 {
		t.Fatalf("Full cross line count = %d, expected 2", len(visible))
	}
	if !close32(visible[0].Position1.X, 15) || !close32(visible[0].Position1.Y, 15) {
		t.Errorf("First diagonal start = %v, expected (15, 15)", visible[0].Position1)
	}
	if !close32(visible[1].Position1.X, 85) || !close32(visible[1].Position1.Y, 15) {
		t.Errorf("Second diagonal start = %v, expected (85, 15)", visible[1].Position1)
	}
	if !close32(visible[1].Position2.X, 15) || !close32(visible[1].Position2.Y, 85) {
		t.Errorf("Second diagonal end = %v, expected (15, 85)", visible[1].Position2)
	}
}
