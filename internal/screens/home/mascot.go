package home

import (
	"charm.land/lipgloss/v2"

	"github.com/tinkerlab/tinkeralpha/internal/ui/theme"
)

// MascotVariant selects which Sparky art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default blue
	MascotCelebrating                      // Gold, star eyes — badge earned recently
	MascotWaving                           // Greeting a fresh sign-in
)

const sparkyIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│  ⚡  │
└─────┘`

const sparkyCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│  ⚡  │
└─╥═╥─┘
  ╚═╝`

const sparkyWaving = `┌─────┐
│ ◉ ◉ │ ⌇
│  ▽  │
│  ⚡  │
└─────┘`

// RenderMascot returns Sparky's ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Secondary

	switch v {
	case MascotCelebrating:
		art = sparkyCelebrating
		fg = theme.SparkGlow
	case MascotWaving:
		art = sparkyWaving
		fg = theme.Accent
	default:
		art = sparkyIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
