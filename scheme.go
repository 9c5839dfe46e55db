package courbe

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Scheme resolves a text color role for the hosting environment.
type Scheme interface {
	Resolve(role Role) color.Color
}

// TermScheme is the default palette for 256-color terminals.
type TermScheme struct{}

func (TermScheme) Resolve(role Role) color.Color {

	if role == SecondaryText {
		return lipgloss.Color("246") // Warm muted grey
	}
	return lipgloss.Color("252") // Near-white
}
