package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/adapters/tui/views"
	"palette/internal/domain"
)

type memStore struct{ col *domain.Collection }

func (s *memStore) Load() (*domain.Collection, error) { return s.col, nil }
func (s *memStore) Save(c *domain.Collection) error   { s.col = c; return nil }
func (s *memStore) Location() string                  { return "memory" }

func newTestApp() (*App, *memStore) {
	store := &memStore{col: domain.NewCollection()}
	app := NewApp(store, &domain.Host{}, nil, nil)
	app.Update(app.Init()())
	return app, store
}

func TestApp_DeleteFlow(t *testing.T) {
	app, store := newTestApp()
	child, err := store.col.AddFolder(store.col.Folders[0].ID, "Child")
	if err != nil {
		t.Fatalf("AddFolder: %v", err)
	}

	app.Update(views.SwitchToDeleteMsg{Folder: child})
	if app.State() != ViewDelete {
		t.Fatalf("state = %v, want ViewDelete", app.State())
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("confirm should emit a command")
	}
	app.Update(cmd())

	if app.State() != ViewBrowser {
		t.Errorf("state = %v, want ViewBrowser", app.State())
	}
	if len(store.col.Folders[0].Children) != 0 {
		t.Error("child folder should be deleted")
	}
}

func TestApp_DeleteCancel(t *testing.T) {
	app, store := newTestApp()
	child, _ := store.col.AddFolder(store.col.Folders[0].ID, "Child")

	app.Update(views.SwitchToDeleteMsg{Folder: child})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(cmd())

	if app.State() != ViewBrowser || len(store.col.Folders[0].Children) != 1 {
		t.Error("cancel should return to the browser without deleting")
	}
}

func TestApp_OpenWithoutEditorReportsError(t *testing.T) {
	app, _ := newTestApp()

	_, cmd := app.Update(views.OpenInEditorMsg{Resource: domain.NewResource("a.txt")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	app.Update(cmd())
	if app.View() == "" {
		t.Error("view should render")
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app, _ := newTestApp()

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	app.Update(cmd())
	if app.State() != ViewHelp {
		t.Fatalf("state = %v, want ViewHelp", app.State())
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(cmd())
	if app.State() != ViewBrowser {
		t.Errorf("state = %v, want ViewBrowser", app.State())
	}
}
