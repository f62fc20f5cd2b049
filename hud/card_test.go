package hud

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestCard_NaturalSizeMinimum(t *testing.T) {
	test.NewApp()
	c := newCard()

	size := c.naturalSize()
	if size.Width != CardMinWidth || size.Height != CardMinHeight {
		t.Errorf("Natural size without message = %v, expected %gx%g", size, CardMinWidth, CardMinHeight)
	}
}

func TestCard_NaturalSizeWithMessage(t *testing.T) {
	test.NewApp()
	c := newCard()
	c.SetPresentation(VariantLoading, "Loading your data", DefaultConfig())

	size := c.naturalSize()
	if size.Height <= CardMinHeight {
		t.Errorf("Natural height with message = %f, expected taller than %f", size.Height, CardMinHeight)
	}
	if size.Width < CardMinWidth || size.Width > CardMaxWidth {
		t.Errorf("Natural width = %f, expected between %f and %f", size.Width, CardMinWidth, CardMaxWidth)
	}
}

func TestCard_NaturalSizeClampsWidth(t *testing.T) {
	test.NewApp()
	c := newCard()
	c.SetPresentation(VariantLoading, strings.Repeat("a very long status message ", 10), DefaultConfig())

	size := c.naturalSize()
	if size.Width != CardMaxWidth {
		t.Errorf("Natural width for a long message = %f, expected clamp at %f", size.Width, CardMaxWidth)
	}
}

func TestCard_PresentationTogglesIndicator(t *testing.T) {
	test.NewApp()
	c := newCard()
	test.WidgetRenderer(c)

	c.SetPresentation(VariantLoading, "", DefaultConfig())
	if !c.spinner.Visible() || c.mark.Visible() {
		t.Error("Expected only the spinner visible while loading")
	}

	c.SetPresentation(VariantSuccess, "", DefaultConfig())
	if c.spinner.Visible() || !c.mark.Visible() {
		t.Error("Expected only the mark visible for success")
	}
	if c.mark.variant != VariantSuccess {
		t.Errorf("Mark variant = %s, expected %s", c.mark.variant, VariantSuccess)
	}

	c.SetPresentation(VariantFailure, "", DefaultConfig())
	if c.mark.variant != VariantFailure {
		t.Errorf("Mark variant = %s, expected %s", c.mark.variant, VariantFailure)
	}
}

func TestCard_MessageVisibility(t *testing.T) {
	test.NewApp()
	c := newCard()
	test.WidgetRenderer(c)

	c.SetPresentation(VariantLoading, "", DefaultConfig())
	if c.message.Visible() {
		t.Error("Expected no message object for an empty message")
	}

	c.SetPresentation(VariantLoading, "Working", DefaultConfig())
	if !c.message.Visible() {
		t.Error("Expected the message visible when text is set")
	}
	if c.message.Text != "Working" {
		t.Errorf("Message text = %q, expected %q", c.message.Text, "Working")
	}
}

func TestCard_OpacityTintsEveryPart(t *testing.T) {
	test.NewApp()
	cfg := DefaultConfig()
	c := newCard()
	c.SetPresentation(VariantSuccess, "Done", cfg)

	c.SetOpacity(0.5)

	if c.background.FillColor != withAlpha(cfg.Background, 0.5) {
		t.Errorf("Background fill = %v, expected half-alpha", c.background.FillColor)
	}
	expected := withAlpha(cfg.Text, 0.5)
	if c.message.Color != expected {
		t.Errorf("Message color = %v, expected %v", c.message.Color, expected)
	}
	if c.spinner.color != expected || c.mark.color != expected {
		t.Error("Expected the indicator stroke tinted with the card")
	}
}

func TestCard_StrokeOnlyForStrokeVariants(t *testing.T) {
	test.NewApp()
	c := newCard()

	c.SetPresentation(VariantLoading, "", DefaultConfig())
	c.SetStroke(0.5)
	if c.mark.progress != 0 {
		t.Errorf("Loading mark progress = %f, expected untouched", c.mark.progress)
	}

	c.SetPresentation(VariantSuccess, "", DefaultConfig())
	c.SetStroke(0.5)
	if !close32(c.mark.progress, 0.5) {
		t.Errorf("Success mark progress = %f, expected 0.5", c.mark.progress)
	}
}

func TestCard_LayoutScalesProportionally(t *testing.T) {
	test.NewApp()
	c := newCard()
	test.WidgetRenderer(c)
	c.SetPresentation(VariantLoading, "Hi", DefaultConfig())

	natural := c.naturalSize()
	c.Resize(natural)

	if !close32(c.spinner.Size().Width, IndicatorSize) {
		t.Errorf("Indicator at rest = %f, expected %f", c.spinner.Size().Width, IndicatorSize)
	}
	if !close32(c.message.TextSize, MessageTextSize) {
		t.Errorf("Text size at rest = %f, expected %f", c.message.TextSize, MessageTextSize)
	}
	if !close32(c.spinner.Position().X, (natural.Width-IndicatorSize)/2) {
		t.Errorf("Indicator x = %f, expected horizontally centered", c.spinner.Position().X)
	}

	c.Resize(fyne.NewSize(natural.Width/2, natural.Height/2))

	if !close32(c.spinner.Size().Width, IndicatorSize/2) {
		t.Errorf("Indicator at half scale = %f, expected %f", c.spinner.Size().Width, IndicatorSize/2)
	}
	if !close32(c.message.TextSize, MessageTextSize/2) {
		t.Errorf("Text size at half scale = %f, expected %f", c.message.TextSize, MessageTextSize/2)
	}
}
