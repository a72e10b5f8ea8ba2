package styles

import (
	"github.com/charmbracelet/lipgloss"

	"palette/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#0D9488") // Teal
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Entry kind colors
	KindAsset    = lipgloss.Color("#60A5FA") // Blue
	KindMacro    = lipgloss.Color("#F97316") // Orange
	KindShortcut = lipgloss.Color("#EC4899") // Pink

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

	// Panes
	Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	PaneFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	PaneTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	// Tree node styles
	NodeFolder = lipgloss.NewStyle().
			Bold(true)

	NodeEntry = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeInvalid = lipgloss.NewStyle().
			Foreground(Error).
			Strikethrough(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the color for an entry kind
func KindColor(kind domain.EntryKind) lipgloss.Color {
	switch kind {
	case domain.EntryAsset:
		return KindAsset
	case domain.EntryMacro:
		return KindMacro
	case domain.EntryShortcut:
		return KindShortcut
	default:
		return Primary
	}
}

// KindBadge returns the short marker shown before an entry name
func KindBadge(kind domain.EntryKind) string {
	badge := "●"
	switch kind {
	case domain.EntryMacro:
		badge = "▸"
	case domain.EntryShortcut:
		badge = "◆"
	}
	return lipgloss.NewStyle().Foreground(KindColor(kind)).Render(badge)
}
