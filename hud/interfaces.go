package hud

// Presenter defines the interface for driving HUD presentations.
type Presenter interface {
	ShowLoading(message string)
	ShowSuccess(message string)
	ShowFailure(message string)
	Show(req ShowRequest)
	Hide()
	HideWithCallback(onDismiss func())
}
