package hud

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/statushud/statushud/shape"
)

// Config holds the visual and interaction options for one presentation.
// It is a plain value: copied on every show, never shared.
type Config struct {
	Background color.Color // card fill
	Text       color.Color // message and indicator strokes
	Mask       color.Color // translucent layer over the content below

	// AllowUserInteraction lets pointer and touch events reach the content
	// below the HUD while it is presented
	AllowUserInteraction bool
}

// DefaultConfig returns a config derived from the current theme. It also
// works before an app exists by falling back to the default dark theme.
func DefaultConfig() Config {
	var bg, fg color.Color
	if fyne.CurrentApp() != nil {
		bg = theme.Color(theme.ColorNameOverlayBackground)
		fg = theme.Color(theme.ColorNameForeground)
	} else {
		bg = theme.DefaultTheme().Color(theme.ColorNameOverlayBackground, theme.VariantDark)
		fg = theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantDark)
	}

	return Config{
		Background:           bg,
		Text:                 fg,
		Mask:                 MaskColor(bg, DefaultMaskOpacity),
		AllowUserInteraction: false,
	}
}

// MaskColor derives the mask color by blending base toward black in Lab space
// and applying the given opacity (clamped to [0,1])
func MaskColor(base color.Color, opacity float64) color.Color {
	c, ok := colorful.MakeColor(base)
	if !ok {
		c = colorful.Color{}
	}

	black := colorful.Color{R: 0, G: 0, B: 0}
	dark := c.BlendLab(black, MaskBlendRatio)

	r, g, b := dark.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(shape.Clamp01(float32(opacity)) * 255)}
}

// normalized returns the config with nil colors replaced from defaults
func (c Config) normalized(defaults Config) Config {
	if c.Background == nil {
		c.Background = defaults.Background
	}
	if c.Text == nil {
		c.Text = defaults.Text
	}
	if c.Mask == nil {
		c.Mask = defaults.Mask
	}
	return c
}

// withAlpha returns c with its alpha channel scaled by opacity
func withAlpha(c color.Color, opacity float32) color.Color {
	if c == nil {
		return color.Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * shape.Clamp01(opacity))
	return n
}
