package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/statushud/statushud"
	"github.com/statushud/statushud/hud"
)

// Simulated job timing
const (
	JobConnectDelay  = 600 * time.Millisecond
	JobShardCount    = 3
	JobShardDelay    = 400 * time.Millisecond
	JobFinalizeDelay = 500 * time.Millisecond
)

// demoUI represents the demo window structure
type demoUI struct {
	window     fyne.Window
	controller *hud.Controller
	settings   *hud.Settings

	messageEntry     *widget.Entry
	autoHideSelect   *widget.Select
	interactionCheck *widget.Check
}

// newDemoUI creates and initializes the demo UI
func newDemoUI(window fyne.Window, app fyne.App) *demoUI {
	ui := &demoUI{
		window:   window,
		settings: hud.NewSettings(app),
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *demoUI) setupUI() {
	// Message shown on the card
	ui.messageEntry = widget.NewEntry()
	ui.messageEntry.SetPlaceHolder("Optional status message")
	ui.messageEntry.SetText("Working on it")

	// Auto-hide choices for terminal presentations
	ui.autoHideSelect = widget.NewSelect([]string{"0.5", "1", "2", "5"}, func(value string) {
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Printf("Invalid auto-hide option %q: %v", value, err)
			return
		}
		ui.settings.SetAutoHideSeconds(seconds)
	})
	ui.autoHideSelect.SetSelected(fmt.Sprintf("%g", ui.settings.GetAutoHideSeconds()))

	// Pass-through toggle. SetChecked can fire the callback before the HUD
	// is installed, hence the nil check.
	ui.interactionCheck = widget.NewCheck("Keep content interactive", func(checked bool) {
		ui.settings.SetAllowInteraction(checked)
		if ui.controller != nil {
			ui.controller.SetDefaults(ui.settings.Config())
		}
	})
	ui.interactionCheck.SetChecked(ui.settings.GetAllowInteraction())

	showLoadingBtn := widget.NewButton("Show Loading", ui.onShowLoading)
	showSuccessBtn := widget.NewButton("Show Success", ui.onShowSuccess)
	showFailureBtn := widget.NewButton("Show Failure", ui.onShowFailure)
	hideBtn := widget.NewButton("Hide", ui.onHide)
	runJobBtn := widget.NewButton("Run Job", func() { ui.onRunJob(false) })
	runFailingJobBtn := widget.NewButton("Run Failing Job", func() { ui.onRunJob(true) })

	// Content under the HUD, to demonstrate masking and input blocking
	clickCount := 0
	counterBtn := widget.NewButton("Click me", nil)
	counterBtn.OnTapped = func() {
		clickCount++
		counterBtn.SetText(fmt.Sprintf("Clicked %d times", clickCount))
	}

	options := container.NewVBox(
		widget.NewLabel("HUD Options"),
		widget.NewSeparator(),
		widget.NewLabel("Message:"),
		ui.messageEntry,
		widget.NewLabel("Auto-hide seconds:"),
		ui.autoHideSelect,
		ui.interactionCheck,
		widget.NewSeparator(),
		showLoadingBtn,
		showSuccessBtn,
		showFailureBtn,
		hideBtn,
		widget.NewSeparator(),
		runJobBtn,
		runFailingJobBtn,
	)

	content := container.NewBorder(
		nil,     // top
		nil,     // bottom
		options, // left
		nil,     // right
		container.NewCenter(counterBtn),
	)

	// Install the HUD over the whole window content
	ui.controller = statushud.Install(ui.window, content)
	ui.controller.SetDefaults(ui.settings.Config())

	log.Printf("Demo UI setup completed successfully")
}

// onShowLoading presents the spinner until an explicit hide
func (ui *demoUI) onShowLoading() {
	ui.controller.Show(hud.ShowRequest{
		Variant: hud.VariantLoading,
		Message: ui.messageEntry.Text,
	})
}

// onShowSuccess presents the checkmark with the configured auto-hide
func (ui *demoUI) onShowSuccess() {
	ui.controller.Show(hud.ShowRequest{
		Variant:       hud.VariantSuccess,
		Message:       ui.messageEntry.Text,
		AutoHideAfter: ui.settings.GetAutoHideDelay(),
		OnDismiss: func() {
			log.Printf("Success presentation dismissed")
		},
	})
}

// onShowFailure presents the cross with the configured auto-hide
func (ui *demoUI) onShowFailure() {
	ui.controller.Show(hud.ShowRequest{
		Variant:       hud.VariantFailure,
		Message:       ui.messageEntry.Text,
		AutoHideAfter: ui.settings.GetAutoHideDelay(),
	})
}

// onHide dismisses whatever is showing
func (ui *demoUI) onHide() {
	ui.controller.HideWithCallback(func() {
		log.Printf("HUD dismissed by user")
	})
}

// onRunJob simulates a multi-stage sync off the UI thread. The controller is
// safe to call from the worker goroutine; each stage replaces the previous
// presentation in place.
func (ui *demoUI) onRunJob(fail bool) {
	ui.controller.ShowLoading("Connecting...")

	go func() {
		time.Sleep(JobConnectDelay)
		ui.controller.ShowLoading("Fetching shards...")

		// Shard fetches run in parallel; the first error cancels the rest
		g, ctx := errgroup.WithContext(context.Background())
		for i := 0; i < JobShardCount; i++ {
			shard := i
			g.Go(func() error {
				select {
				case <-time.After(JobShardDelay + time.Duration(shard)*100*time.Millisecond):
				case <-ctx.Done():
					return ctx.Err()
				}
				if fail && shard == JobShardCount-1 {
					return fmt.Errorf("shard %d unreachable", shard)
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			log.Printf("Job failed: %v", err)
			ui.controller.Show(hud.ShowRequest{
				Variant:       hud.VariantFailure,
				Message:       "Sync failed",
				AutoHideAfter: ui.settings.GetAutoHideDelay(),
			})
			return
		}

		ui.controller.ShowLoading("Finalizing...")
		time.Sleep(JobFinalizeDelay)

		ui.controller.Show(hud.ShowRequest{
			Variant:       hud.VariantSuccess,
			Message:       "All shards synced",
			AutoHideAfter: ui.settings.GetAutoHideDelay(),
			OnDismiss: func() {
				log.Printf("Job result dismissed")
			},
		})
	}()
}
