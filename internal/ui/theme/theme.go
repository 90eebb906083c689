package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — bright workshop colors for young tinkerers
var (
	Primary    = lipgloss.Color("#F59E0B") // Amber (spark)
	Secondary  = lipgloss.Color("#3B82F6") // Electric Blue
	Accent     = lipgloss.Color("#EC4899") // Pink
	Success    = lipgloss.Color("#22C55E") // Green
	Error      = lipgloss.Color("#F43F5E") // Rose
	Star       = lipgloss.Color("#FACC15") // Gold
	Text       = lipgloss.Color("#F8FAFC") // White
	TextDim    = lipgloss.Color("#94A3B8") // Slate
	BgDark     = lipgloss.Color("#0F172A") // Deep Navy
	BgCard     = lipgloss.Color("#1E293B") // Dark Slate
	Border     = lipgloss.Color("#334155") // Slate
	SparkGlow  = lipgloss.Color("#FDE047") // Bright Yellow
	WireCopper = lipgloss.Color("#FB923C") // Copper Orange
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	StarCounter = lipgloss.NewStyle().
			Foreground(Star).
			Bold(true)

	FeedbackPopup = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(SparkGlow).
			Foreground(Text).
			Background(BgCard).
			Align(lipgloss.Center).
			Padding(1, 3)
)
