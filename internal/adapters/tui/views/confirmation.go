package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/adapters/tui/styles"
	"palette/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// DeleteModel asks before a folder and everything under it is deleted
type DeleteModel struct {
	ViewState
	folder *domain.Folder
	Keys   ConfirmKeyMap
}

// NewDeleteModel creates a new delete confirmation view
func NewDeleteModel() *DeleteModel {
	return &DeleteModel{Keys: DefaultConfirmKeys}
}

// SetTarget sets the folder to delete
func (m *DeleteModel) SetTarget(f *domain.Folder) {
	m.folder = f
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, m.Keys.Confirm):
			if m.folder == nil {
				return m, func() tea.Msg { return SwitchToBrowserMsg{} }
			}
			id := m.folder.ID
			return m, func() tea.Msg { return DeleteConfirmedMsg{FolderID: id} }
		}
	}
	return m, nil
}

// View renders the delete confirmation
func (m *DeleteModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Delete folder"))
	b.WriteString("\n\n")

	if m.folder != nil {
		b.WriteString(styles.InputLabel.Render("Folder:"))
		b.WriteString("\n  ")
		b.WriteString(m.folder.Name)
		b.WriteString("\n\n")

		folders, entries := subtreeSize(m.folder)
		if folders > 1 || entries > 0 {
			b.WriteString(styles.WarningMsg.Render(fmt.Sprintf(
				"This also deletes %d subfolder(s) and %d entr%s.",
				folders-1, entries, pluralY(entries))))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(RenderConfirmPrompt("Delete?"))
	return styles.App.Render(b.String())
}

func subtreeSize(f *domain.Folder) (folders, entries int) {
	f.Walk(func(sub *domain.Folder, _ int) bool {
		folders++
		entries += len(sub.Entries)
		return true
	})
	return folders, entries
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
