package tui

import "github.com/charmbracelet/lipgloss"

// Palette colors.
var (
	Primary = lipgloss.Color("#10B981") // Emerald
	Muted   = lipgloss.Color("#64748B") // Slate
	Danger  = lipgloss.Color("#E53935") // Red
	Border  = lipgloss.Color("#CBD5E1")
)

// Styles holds the styled components of the dashboard.
type Styles struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardValue lipgloss.Style
	Header    lipgloss.Style
	Row       lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			MarginRight(1),
		CardTitle: lipgloss.NewStyle().Foreground(Muted),
		CardValue: lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Row:       lipgloss.NewStyle(),
		Active:    lipgloss.NewStyle().Foreground(Primary),
		Inactive:  lipgloss.NewStyle().Foreground(Muted),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Error:     lipgloss.NewStyle().Foreground(Danger).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
	}
}
