package hud

// Variant represents which indicator the HUD card shows
type Variant string

const (
	// VariantLoading shows the rotating ring spinner
	VariantLoading Variant = "Loading"

	// VariantSuccess shows the animated checkmark
	VariantSuccess Variant = "Success"

	// VariantFailure shows the animated cross
	VariantFailure Variant = "Failure"
)

// String returns the string representation of Variant
func (v Variant) String() string {
	return string(v)
}

// HasStroke returns true if the variant draws a progressive stroke shape
func (v Variant) HasStroke() bool {
	return v == VariantSuccess || v == VariantFailure
}

// IsTerminal returns true if the variant reports a finished outcome
func (v Variant) IsTerminal() bool {
	return v == VariantSuccess || v == VariantFailure
}
