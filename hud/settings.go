package hud

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Settings keys for Fyne preferences
const (
	KeyAllowInteraction = "hud_allow_interaction"
	KeyAutoHideSeconds  = "hud_auto_hide_seconds"
	KeyMaskOpacity      = "hud_mask_opacity"
	KeyBackgroundColor  = "hud_background_color"
	KeyTextColor        = "hud_text_color"
)

// Default values
const (
	DefaultAllowInteraction = false
	DefaultAutoHideSeconds  = 1.0
)

// Settings manages the persisted HUD configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAllowInteraction returns whether content stays interactive under the HUD
func (s *Settings) GetAllowInteraction() bool {
	return s.app.Preferences().BoolWithFallback(KeyAllowInteraction, DefaultAllowInteraction)
}

// SetAllowInteraction sets whether content stays interactive under the HUD
func (s *Settings) SetAllowInteraction(allow bool) {
	s.app.Preferences().SetBool(KeyAllowInteraction, allow)
}

// GetAutoHideSeconds returns how long terminal presentations stay on screen
func (s *Settings) GetAutoHideSeconds() float64 {
	return s.app.Preferences().FloatWithFallback(KeyAutoHideSeconds, DefaultAutoHideSeconds)
}

// SetAutoHideSeconds sets how long terminal presentations stay on screen
func (s *Settings) SetAutoHideSeconds(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > 30 {
		seconds = 30
	}
	s.app.Preferences().SetFloat(KeyAutoHideSeconds, seconds)
}

// GetAutoHideDelay returns the auto-hide setting as a duration
func (s *Settings) GetAutoHideDelay() time.Duration {
	return time.Duration(s.GetAutoHideSeconds() * float64(time.Second))
}

// GetMaskOpacity returns the translucency of the fully shown mask
func (s *Settings) GetMaskOpacity() float64 {
	return s.app.Preferences().FloatWithFallback(KeyMaskOpacity, DefaultMaskOpacity)
}

// SetMaskOpacity sets the translucency of the fully shown mask
func (s *Settings) SetMaskOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	s.app.Preferences().SetFloat(KeyMaskOpacity, opacity)
}

// GetBackgroundColor returns the stored card background override, or nil when
// the theme default should be used
func (s *Settings) GetBackgroundColor() color.Color {
	return parseColor(s.app.Preferences().String(KeyBackgroundColor))
}

// SetBackgroundColor stores the card background override; nil clears it
func (s *Settings) SetBackgroundColor(c color.Color) {
	s.app.Preferences().SetString(KeyBackgroundColor, formatColor(c))
}

// GetTextColor returns the stored message and indicator color override, or
// nil when the theme default should be used
func (s *Settings) GetTextColor() color.Color {
	return parseColor(s.app.Preferences().String(KeyTextColor))
}

// SetTextColor stores the message and indicator color override; nil clears it
func (s *Settings) SetTextColor(c color.Color) {
	s.app.Preferences().SetString(KeyTextColor, formatColor(c))
}

// Config assembles a HUD config from the stored preferences, falling back to
// theme-derived defaults for anything unset
func (s *Settings) Config() Config {
	cfg := DefaultConfig()
	if background := s.GetBackgroundColor(); background != nil {
		cfg.Background = background
	}
	if text := s.GetTextColor(); text != nil {
		cfg.Text = text
	}
	cfg.Mask = MaskColor(cfg.Background, s.GetMaskOpacity())
	cfg.AllowUserInteraction = s.GetAllowInteraction()
	return cfg
}

// parseColor decodes a stored hex color; empty or invalid values mean unset
func parseColor(value string) color.Color {
	if value == "" {
		return nil
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		log.Printf("Ignoring invalid HUD color %q: %v", value, err)
		return nil
	}
	return parsed
}

// formatColor encodes a color as a hex string for storage
func formatColor(c color.Color) string {
	if c == nil {
		return ""
	}
	parsed, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return parsed.Hex()
}
