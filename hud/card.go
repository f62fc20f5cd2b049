package hud

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// card is the centered panel holding the status indicator and the optional
// message. It has no fixed footprint: the overlay resizes it every animation
// tick to emulate the pop scale effect, and the renderer lays children out
// proportionally to the current width so the whole card shrinks and grows as
// one piece.
type card struct {
	widget.BaseWidget

	background *canvas.Rectangle
	message    *canvas.Text
	spinner    *Spinner
	mark       *strokeMark

	cfg     Config
	variant Variant
	opacity float32
}

func newCard() *card {
	c := &card{
		background: canvas.NewRectangle(color.Transparent),
		message:    canvas.NewText("", color.White),
		spinner:    NewSpinner(),
		mark:       newStrokeMark(),
		cfg:        DefaultConfig(),
		variant:    VariantLoading,
		opacity:    1,
	}
	c.background.CornerRadius = CardCornerRadius
	c.message.Alignment = fyne.TextAlignCenter
	c.message.TextSize = MessageTextSize
	c.applyColors()
	c.ExtendBaseWidget(c)
	return c
}

// SetPresentation switches the card to a new variant, message and palette.
// Stroke progress is not touched here; the animation sequencer owns it.
func (c *card) SetPresentation(variant Variant, message string, cfg Config) {
	c.variant = variant
	c.cfg = cfg
	c.message.Text = message
	if variant.HasStroke() {
		c.mark.SetVariant(variant)
	}
	c.applyColors()
	c.Refresh()
}

// SetOpacity fades every painted part of the card in lockstep
func (c *card) SetOpacity(opacity float32) {
	c.opacity = opacity
	c.applyColors()
}

// SetStroke updates the drawn fraction of the checkmark or cross
func (c *card) SetStroke(progress float32) {
	if c.variant.HasStroke() {
		c.mark.SetProgress(progress)
	}
}

// setRunning starts or stops the spinner; only the loading variant animates
func (c *card) setRunning(running bool) {
	if running && c.variant == VariantLoading {
		c.spinner.Start()
		return
	}
	c.spinner.Stop()
}

func (c *card) applyColors() {
	tinted := withAlpha(c.cfg.Text, c.opacity)
	c.background.FillColor = withAlpha(c.cfg.Background, c.opacity)
	c.message.Color = tinted
	c.spinner.SetColor(tinted)
	c.mark.SetColor(tinted)
	c.background.Refresh()
	c.message.Refresh()
}

// naturalSize is the card footprint at rest scale: wide enough for the
// indicator or the message, clamped so extreme messages cannot push the card
// past its maximum width
func (c *card) naturalSize() fyne.Size {
	width := IndicatorSize + 2*CardPadding
	height := 2*CardPadding + IndicatorSize
	if c.message.Text != "" {
		text := fyne.MeasureText(c.message.Text, MessageTextSize, c.message.TextStyle)
		width = fyne.Max(width, text.Width+2*CardPadding)
		height += MessageGap + text.Height
	}
	width = fyne.Min(fyne.Max(width, CardMinWidth), CardMaxWidth)
	height = fyne.Max(height, CardMinHeight)
	return fyne.NewSize(width, height)
}

// CreateRenderer creates the widget renderer
func (c *card) CreateRenderer() fyne.WidgetRenderer {
	return &cardRenderer{card: c}
}

type cardRenderer struct {
	card *card
}

// Layout positions the indicator and message proportionally to the current
// size. The ratio of current to natural width is the scale factor the
// overlay is animating, so corner radius, indicator, gap and text size all
// follow it.
func (r *cardRenderer) Layout(size fyne.Size) {
	natural := r.card.naturalSize()
	factor := float32(1)
	if natural.Width > 0 {
		factor = size.Width / natural.Width
	}

	r.card.background.Move(fyne.NewPos(0, 0))
	r.card.background.Resize(size)
	r.card.background.CornerRadius = CardCornerRadius * factor

	indicator := IndicatorSize * factor
	gap := float32(0)
	var text fyne.Size
	if r.card.message.Text != "" {
		r.card.message.TextSize = MessageTextSize * factor
		text = fyne.MeasureText(r.card.message.Text, r.card.message.TextSize, r.card.message.TextStyle)
		gap = MessageGap * factor
	}

	top := (size.Height - indicator - gap - text.Height) / 2

	indicatorPos := fyne.NewPos((size.Width-indicator)/2, top)
	indicatorSize := fyne.NewSize(indicator, indicator)
	r.card.spinner.Move(indicatorPos)
	r.card.spinner.Resize(indicatorSize)
	r.card.mark.Move(indicatorPos)
	r.card.mark.Resize(indicatorSize)

	if r.card.message.Text != "" {
		r.card.message.Move(fyne.NewPos(0, top+indicator+gap))
		r.card.message.Resize(fyne.NewSize(size.Width, text.Height))
	}
}

func (r *cardRenderer) MinSize() fyne.Size {
	return r.card.naturalSize()
}

// Refresh shows the indicator matching the variant and hides the other one
func (r *cardRenderer) Refresh() {
	if r.card.variant == VariantLoading {
		r.card.spinner.Show()
		r.card.mark.Hide()
	} else {
		r.card.spinner.Hide()
		r.card.mark.Show()
	}
	if r.card.message.Text == "" {
		r.card.message.Hide()
	} else {
		r.card.message.Show()
	}

	size := r.card.Size()
	if size.Width > 0 && size.Height > 0 {
		r.Layout(size)
	}
	r.card.background.Refresh()
	r.card.message.Refresh()
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.card.background, r.card.spinner, r.card.mark, r.card.message}
}

func (r *cardRenderer) Destroy() {
	r.card.spinner.Stop()
}
