package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: night-sky blues with warm accents for warnings.
var (
	Primary   = lipgloss.Color("#7C9CF5") // Periwinkle
	Secondary = lipgloss.Color("#5EC4D6") // Moonlit Cyan
	Accent    = lipgloss.Color("#F5B971") // Lamp Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Soft Red
	Text      = lipgloss.Color("#E2E8F0") // Mist
	TextDim   = lipgloss.Color("#8491A8") // Dusk
	BgDark    = lipgloss.Color("#0B1020") // Midnight
	BgCard    = lipgloss.Color("#161D33") // Night Card
	Border    = lipgloss.Color("#2C3654") // Slate Blue
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

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
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

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim).
			Strikethrough(true)

	LowRisk = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	HighRisk = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	GaugeFilled = lipgloss.NewStyle().
			Background(Secondary)

	GaugeEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
