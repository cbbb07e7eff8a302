package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Search input
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Filter selectors (scope, type)
	FilterLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	FilterValue = lipgloss.NewStyle().
			Foreground(White)

	// Result rows
	ResultSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	ResultType = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	ResultParents = lipgloss.NewStyle().
			Foreground(Muted)

	// Status line
	StatusText = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Help
	HelpKey = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)
