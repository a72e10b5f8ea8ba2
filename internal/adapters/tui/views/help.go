package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Palette Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(bindingLine(BrowserKeys.Up, BrowserKeys.Down))
	b.WriteString(bindingLine(BrowserKeys.Left))
	b.WriteString(bindingLine(BrowserKeys.Right))
	b.WriteString(bindingLine(BrowserKeys.Tab))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Folders"))
	b.WriteString("\n")
	b.WriteString(bindingLine(BrowserKeys.New))
	b.WriteString(bindingLine(BrowserKeys.NewRoot))
	b.WriteString(bindingLine(BrowserKeys.Delete))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Entries"))
	b.WriteString("\n")
	b.WriteString(bindingLine(BrowserKeys.Enter))
	b.WriteString(bindingLine(BrowserKeys.Remove))
	b.WriteString(bindingLine(BrowserKeys.MoveUp))
	b.WriteString(bindingLine(BrowserKeys.MoveDown))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Both panes"))
	b.WriteString("\n")
	b.WriteString(bindingLine(BrowserKeys.Rename))
	b.WriteString(bindingLine(BrowserKeys.Copy))
	b.WriteString(bindingLine(BrowserKeys.Sort))
	b.WriteString(bindingLine(BrowserKeys.Refresh))
	b.WriteString(bindingLine(BrowserKeys.Purge))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(bindingLine(BrowserKeys.Help))
	b.WriteString(bindingLine(BrowserKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Entry kinds"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  asset     opens the file in your editor"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  macro     runs a registered static method"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  shortcut  copies the saved selection's paths"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func bindingLine(bindings ...key.Binding) string {
	var keys, desc []string
	for _, kb := range bindings {
		keys = append(keys, kb.Help().Key)
		desc = append(desc, kb.Help().Desc)
	}
	return helpLine(strings.Join(keys, " / "), strings.Join(desc, ", "))
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
