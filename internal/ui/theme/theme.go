package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: dark dashboard with blue accents.
var (
	Primary   = lipgloss.Color("#4DA6FF") // Sky Blue
	Secondary = lipgloss.Color("#1F77B4") // Steel Blue
	Accent    = lipgloss.Color("#F2C94C") // Amber
	Success   = lipgloss.Color("#3FB950") // Green
	Error     = lipgloss.Color("#F85149") // Red
	Text      = lipgloss.Color("#FFFFFF") // White
	TextDim   = lipgloss.Color("#8B949E") // Gray
	BgDark    = lipgloss.Color("#0E1117") // Near Black
	BgCard    = lipgloss.Color("#161B22") // Card Gray
	Border    = lipgloss.Color("#30363D") // Border Gray
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

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// ResultCard mirrors the gradient prediction banner of the web dashboard.
	ResultCard = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Text).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
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
)
