package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all lab sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for bench border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// LabFrame wraps content in a double-border workbench frame,
// centering vertically and horizontally within the given dimensions.
func LabFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// LabCard wraps content in a rounded-border card at the given content width.
func LabCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// StarRow renders earned stars out of a total, gold for earned and dim
// for the rest.
func StarRow(earned, total int) string {
	if total <= 0 {
		return ""
	}
	if earned < 0 {
		earned = 0
	}
	if earned > total {
		earned = total
	}
	gold := lipgloss.NewStyle().Foreground(theme.Star).
		Render(strings.Repeat("★", earned))
	dim := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("☆", total-earned))
	return gold + dim
}
