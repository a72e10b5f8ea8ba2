package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/adapters/tui/styles"
)

// LineEditKeyMap defines key bindings for inline editing
type LineEditKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultLineEditKeys returns the default inline editing key bindings
var DefaultLineEditKeys = LineEditKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// LineEditResult tells the caller what a key did to the editor
type LineEditResult int

const (
	LineEditing LineEditResult = iota
	LineSubmitted
	LineCancelled
)

// LineEditor is a labelled single-line text input used for inline renames
// and new folder names
type LineEditor struct {
	Label string
	Input textinput.Model
	Keys  LineEditKeyMap
}

// NewLineEditor creates a focused editor prefilled with value
func NewLineEditor(label, placeholder, value string, charLimit int) *LineEditor {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()
	return &LineEditor{
		Label: label,
		Input: input,
		Keys:  DefaultLineEditKeys,
	}
}

// Init returns the blink command for the input
func (e *LineEditor) Init() tea.Cmd {
	return textinput.Blink
}

// Update feeds msg to the input and reports whether it was submitted or cancelled
func (e *LineEditor) Update(msg tea.Msg) (LineEditResult, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, e.Keys.Submit):
			e.Input.Blur()
			return LineSubmitted, nil
		case key.Matches(msg, e.Keys.Cancel):
			e.Input.Blur()
			return LineCancelled, nil
		}
	}

	var cmd tea.Cmd
	e.Input, cmd = e.Input.Update(msg)
	return LineEditing, cmd
}

// Value returns the trimmed input
func (e *LineEditor) Value() string {
	return strings.TrimSpace(e.Input.Value())
}

// View renders the label and input
func (e *LineEditor) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(e.Label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(e.Input.View()))
	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("save") + "  ")
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"))
	return b.String()
}
