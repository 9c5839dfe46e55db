package courbe

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderFooter renders a footer with the current selection and the data
// source name.
func RenderFooter(selected, total int, source string, width int) string {

	left := "no selection"
	if selected >= 0 {
		left = fmt.Sprintf("%d/%d", selected+1, total)
	}
	right := source

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return footerStyle.Render(left + strings.Repeat(" ", padding) + right)
}
