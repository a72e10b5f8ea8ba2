package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"palette/internal/adapters/tui/views"
	"palette/internal/domain"
	"palette/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	confirm *views.DeleteModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. editor may be nil, in which case
// assets cannot be opened.
func NewApp(store ports.CollectionStore, host *domain.Host, editor ports.EditorOpener, clip views.Clipboard) *App {
	return &App{
		editor:  editor,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store, host, clip),
		confirm: views.NewDeleteModel(),
		help:    views.NewHelpModel(),
	}
}

// Notify shows a host failure report on the browser's status line
func (a *App) Notify(msg string) {
	a.browser.SetMessage(msg, true)
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.confirm.SetTarget(msg.Folder)
		return a, a.confirm.Init()

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.DeleteConfirmedMsg:
		a.state = ViewBrowser
		_, cmd := a.browser.Update(msg)
		return a, cmd

	case views.OpenInEditorMsg:
		return a, a.openEditor(msg.Resource)

	case editorFinishedMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("Editor failed")
			a.browser.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewDelete:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(res *domain.Resource) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: errNoEditor}
		}
	}

	cmd, err := a.editor.Command(res)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDelete:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

var errNoEditor = errors.New("no editor configured")
