package hud

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestDefaultConfig(t *testing.T) {
	test.NewApp()

	cfg := DefaultConfig()
	if cfg.Background == nil || cfg.Text == nil || cfg.Mask == nil {
		t.Fatal("DefaultConfig should fill all colors")
	}
	if cfg.AllowUserInteraction {
		t.Error("DefaultConfig should block interaction by default")
	}

	_, _, _, a := cfg.Mask.RGBA()
	if a == 0 || a == 0xffff {
		t.Errorf("Mask should be translucent, got alpha %d", a)
	}
}

func TestMaskColor(t *testing.T) {
	base := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	tests := []struct {
		opacity       float64
		expectedAlpha uint8
	}{
		{0, 0},
		{0.5, 127},
		{1, 255},
		{2, 255},
		{-1, 0},
	}

	for _, test := range tests {
		mask := MaskColor(base, test.opacity).(color.NRGBA)
		if mask.A != test.expectedAlpha {
			t.Errorf("MaskColor(opacity=%f) alpha = %d, expected %d", test.opacity, mask.A, test.expectedAlpha)
		}
		// Blending toward black must darken every channel
		if mask.R >= base.R || mask.G >= base.G || mask.B >= base.B {
			t.Errorf("MaskColor(opacity=%f) = %v should be darker than %v", test.opacity, mask, base)
		}
	}
}

func TestMaskColor_TransparentBase(t *testing.T) {
	mask := MaskColor(color.Transparent, 0.5).(color.NRGBA)
	if mask.A != 127 {
		t.Errorf("Mask alpha = %d, expected 127", mask.A)
	}
	if mask.R != 0 || mask.G != 0 || mask.B != 0 {
		t.Errorf("Transparent base should fall back to black, got %v", mask)
	}
}

func TestConfig_Normalized(t *testing.T) {
	defaults := Config{
		Background: color.NRGBA{R: 1, A: 255},
		Text:       color.NRGBA{G: 1, A: 255},
		Mask:       color.NRGBA{B: 1, A: 128},
	}

	custom := Config{Background: color.NRGBA{R: 99, A: 255}, AllowUserInteraction: true}
	merged := custom.normalized(defaults)

	if merged.Background != custom.Background {
		t.Error("Explicit background should be kept")
	}
	if merged.Text != defaults.Text {
		t.Error("Nil text color should come from defaults")
	}
	if merged.Mask != defaults.Mask {
		t.Error("Nil mask color should come from defaults")
	}
	if !merged.AllowUserInteraction {
		t.Error("Interaction flag should be kept")
	}

	full := defaults.normalized(Config{})
	if full.Background != defaults.Background || full.Text != defaults.Text || full.Mask != defaults.Mask {
		t.Error("Fully specified config should be unchanged")
	}
}

func TestWithAlpha(t *testing.T) {
	base := color.NRGBA{R: 10, G: 20, B: 30, A: 200}

	tests := []struct {
		opacity       float32
		expectedAlpha uint8
	}{
		{0, 0},
		{0.5, 100},
		{1, 200},
		{1.5, 200},
	}

	for _, test := range tests {
		result := withAlpha(base, test.opacity).(color.NRGBA)
		if result.A != test.expectedAlpha {
			t.Errorf("withAlpha(opacity=%f) alpha = %d, expected %d", test.opacity, result.A, test.expectedAlpha)
		}
		if result.R != base.R || result.G != base.G || result.B != base.B {
			t.Errorf("withAlpha should not change color channels, got %v", result)
		}
	}
}

func TestWithAlpha_NilColor(t *testing.T) {
	result := withAlpha(nil, 1)
	_, _, _, a := result.RGBA()
	if a != 0 {
		t.Errorf("withAlpha(nil) should be fully transparent, got alpha %d", a)
	}
}
