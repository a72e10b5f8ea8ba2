package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"palette/internal/adapters/tui/styles"
	"palette/internal/application"
	"palette/internal/application/commands"
	"palette/internal/domain"
	"palette/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	Enter    key.Binding
	New      key.Binding
	NewRoot  key.Binding
	Rename   key.Binding
	Delete   key.Binding
	Remove   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Sort     key.Binding
	Refresh  key.Binding
	Purge    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new folder"),
	),
	NewRoot: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new root folder"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete folder"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove entry"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move entry up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move entry down"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	Purge: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "purge invalid"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy identifier"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Pane identifies which half of the browser has focus
type Pane int

const (
	PaneFolders Pane = iota
	PaneEntries
)

type editMode int

const (
	editNone editMode = iota
	editNewFolder
	editRenameFolder
	editRenameEntry
)

type folderRow struct {
	folder *domain.Folder
	depth  int
}

// BrowserModel shows the folder tree on the left and the selected folder's
// entries on the right. Everything runs on the update loop; commands are
// executed synchronously and the collection is reloaded afterwards.
type BrowserModel struct {
	ViewState
	store  ports.CollectionStore
	host   *domain.Host
	opener *DeferredOpener
	clip   Clipboard

	col       *domain.Collection
	rows      []folderRow
	collapsed map[string]bool
	selected  string // folder ID
	cursor    int    // entry index in the selected folder
	focus     Pane

	rename    application.RenameSession
	edit      editMode
	editor    *LineEditor
	newParent string
}

// NewBrowserModel creates a browser. Asset opens are deferred to the app
// through OpenInEditorMsg; the rest of host is used as given.
func NewBrowserModel(store ports.CollectionStore, host *domain.Host, clip Clipboard) *BrowserModel {
	opener := &DeferredOpener{}
	h := domain.Host{}
	if host != nil {
		h = *host
	}
	h.Opener = opener

	return &BrowserModel{
		store:     store,
		host:      &h,
		opener:    opener,
		clip:      clip,
		collapsed: make(map[string]bool),
	}
}

type collectionLoadedMsg struct {
	col *domain.Collection
}

type errMsg struct {
	err error
}

// Init loads the collection
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadCollection
}

func (m *BrowserModel) loadCollection() tea.Msg {
	col, err := m.store.Load()
	if err != nil {
		return errMsg{err}
	}
	return collectionLoadedMsg{col}
}

// Reload re-reads the collection from the store, keeping the selection
func (m *BrowserModel) Reload() error {
	col, err := m.store.Load()
	if err != nil {
		return err
	}
	m.setCollection(col)
	return nil
}

func (m *BrowserModel) setCollection(col *domain.Collection) {
	m.col = col
	m.refreshRows()
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case collectionLoadedMsg:
		m.setCollection(msg.col)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case DeleteConfirmedMsg:
		m.deleteFolder(msg.FolderID)
		return m, nil

	case tea.KeyMsg:
		if m.edit != editNone {
			return m, m.updateEdit(msg)
		}
		return m, m.handleKey(msg)
	}

	if m.edit != editNone {
		_, cmd := m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.ClearMessage()

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, BrowserKeys.Tab):
		if m.focus == PaneFolders {
			m.focus = PaneEntries
		} else {
			m.focus = PaneFolders
		}
		m.clampCursor()

	case key.Matches(msg, BrowserKeys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, BrowserKeys.Down):
		m.moveCursor(1)

	case key.Matches(msg, BrowserKeys.Left):
		if m.focus == PaneEntries {
			m.focus = PaneFolders
			break
		}
		m.collapseOrParent()

	case key.Matches(msg, BrowserKeys.Right):
		if f := m.selectedFolder(); f != nil && len(f.Children) > 0 && m.collapsed[f.ID] {
			delete(m.collapsed, f.ID)
			m.refreshRows()
		}

	case key.Matches(msg, BrowserKeys.Enter):
		if m.focus == PaneFolders {
			m.focus = PaneEntries
			m.clampCursor()
			break
		}
		return m.openEntry()

	case key.Matches(msg, BrowserKeys.New):
		return m.startEdit(editNewFolder, m.selected)

	case key.Matches(msg, BrowserKeys.NewRoot):
		return m.startEdit(editNewFolder, "")

	case key.Matches(msg, BrowserKeys.Rename):
		if m.focus == PaneEntries {
			return m.startEdit(editRenameEntry, "")
		}
		return m.startEdit(editRenameFolder, "")

	case key.Matches(msg, BrowserKeys.Delete):
		if f := m.selectedFolder(); f != nil {
			return func() tea.Msg { return SwitchToDeleteMsg{Folder: f} }
		}

	case key.Matches(msg, BrowserKeys.Remove):
		if m.focus == PaneEntries {
			m.removeEntry()
		}

	case key.Matches(msg, BrowserKeys.MoveUp):
		m.shiftEntry(-1)

	case key.Matches(msg, BrowserKeys.MoveDown):
		m.shiftEntry(1)

	case key.Matches(msg, BrowserKeys.Sort):
		m.run(func(ctx context.Context) (string, error) {
			r, err := commands.NewSortCommand(m.store, m.host, "").Execute(ctx)
			if err != nil {
				return "", err
			}
			return r.Message, nil
		})

	case key.Matches(msg, BrowserKeys.Refresh):
		m.run(func(ctx context.Context) (string, error) {
			r, err := commands.NewRefreshCommand(m.store, m.host).Execute(ctx)
			if err != nil {
				return "", err
			}
			return r.Message, nil
		})

	case key.Matches(msg, BrowserKeys.Purge):
		m.run(func(ctx context.Context) (string, error) {
			r, err := commands.NewPurgeCommand(m.store, m.host).Execute(ctx)
			if err != nil {
				return "", err
			}
			return r.Message, nil
		})

	case key.Matches(msg, BrowserKeys.Copy):
		m.copyIdentifier()
	}

	return nil
}

// run executes a command, reloads, and reports its message
func (m *BrowserModel) run(fn func(ctx context.Context) (string, error)) {
	message, err := fn(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	if err := m.Reload(); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	if m.Message == "" {
		m.SetMessage(message, false)
	}
}

func (m *BrowserModel) moveCursor(delta int) {
	if m.focus == PaneEntries {
		m.cursor += delta
		m.clampCursor()
		return
	}
	i := m.selectedRow() + delta
	if i >= 0 && i < len(m.rows) {
		m.selected = m.rows[i].folder.ID
		m.cursor = 0
	}
}

func (m *BrowserModel) collapseOrParent() {
	f := m.selectedFolder()
	if f == nil {
		return
	}
	if len(f.Children) > 0 && !m.collapsed[f.ID] {
		m.collapsed[f.ID] = true
		m.refreshRows()
		return
	}
	if path := m.col.PathTo(f.ID); len(path) > 1 {
		m.selected = path[len(path)-2].ID
		m.cursor = 0
	}
}

func (m *BrowserModel) openEntry() tea.Cmd {
	f := m.selectedFolder()
	if f == nil || len(f.Entries) == 0 {
		return nil
	}
	m.run(func(ctx context.Context) (string, error) {
		r, err := commands.NewOpenEntryCommand(m.store, m.host, f.ID, m.cursor).Execute(ctx)
		if err != nil {
			return "", err
		}
		return r.Message, nil
	})

	if res := m.opener.Take(); res != nil {
		return func() tea.Msg { return OpenInEditorMsg{Resource: res} }
	}
	return nil
}

func (m *BrowserModel) removeEntry() {
	f := m.selectedFolder()
	if f == nil || len(f.Entries) == 0 {
		return
	}
	m.run(func(ctx context.Context) (string, error) {
		r, err := commands.NewRemoveEntryCommand(m.store, m.host, f.ID, m.cursor).Execute(ctx)
		if err != nil {
			return "", err
		}
		return r.Message, nil
	})
	m.clampCursor()
}

func (m *BrowserModel) shiftEntry(delta int) {
	f := m.selectedFolder()
	if m.focus != PaneEntries || f == nil {
		return
	}
	target := m.cursor + delta
	if m.cursor >= len(f.Entries) || target < 0 || target >= len(f.Entries) {
		return
	}
	m.run(func(ctx context.Context) (string, error) {
		r, err := commands.NewMoveEntryCommand(m.store, m.host, f.ID, m.cursor, f.ID, target).Execute(ctx)
		if err != nil {
			return "", err
		}
		return r.Message, nil
	})
	// a sorted folder puts the entry back where it was
	if m.col.SortMode == domain.SortUnsorted {
		m.cursor = target
	}
}

func (m *BrowserModel) deleteFolder(id string) {
	m.ClearMessage()
	var result *commands.DeleteFolderResult
	m.run(func(ctx context.Context) (string, error) {
		r, err := commands.NewDeleteFolderCommand(m.store, id, m.selected).Execute(ctx)
		if err != nil {
			return "", err
		}
		result = r
		return r.Message, nil
	})
	if result == nil {
		return
	}
	if !result.Deleted {
		m.SetMessage(result.Message, true)
	}
	if result.Selected != "" {
		m.selected = result.Selected
	}
	m.refreshRows()
}

func (m *BrowserModel) copyIdentifier() {
	if m.clip == nil {
		m.SetMessage("clipboard not available", true)
		return
	}
	var text, what string
	if m.focus == PaneEntries {
		e := m.selectedEntry()
		if e == nil {
			return
		}
		text, what = entryIdentifier(e), e.Name(m.host)
	} else {
		f := m.selectedFolder()
		if f == nil {
			return
		}
		text, what = f.ID, f.Name
	}
	if text == "" {
		m.SetMessage(fmt.Sprintf("%s has no identifier", what), true)
		return
	}
	if err := m.clip.Copy(text); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(fmt.Sprintf("Copied identifier of %s", what), false)
}

func entryIdentifier(e *domain.Entry) string {
	switch e.Kind {
	case domain.EntryAsset:
		return e.Asset.Ref.ID()
	case domain.EntryMacro:
		return e.Macro.Script.ID() + ":" + e.Macro.Method
	case domain.EntryShortcut:
		return strings.Join(e.Shortcut.Members.IDs(), "\n")
	}
	return ""
}

// --- inline editing ---

func (m *BrowserModel) startEdit(mode editMode, parentID string) tea.Cmd {
	switch mode {
	case editNewFolder:
		m.newParent = parentID
		label := "New root folder"
		if parentID != "" {
			if f, ok := m.col.Find(parentID); ok {
				label = "New folder in " + f.Name
			}
		}
		m.editor = NewLineEditor(label, domain.NewFolderName, "", 128)

	case editRenameFolder:
		f := m.selectedFolder()
		if f == nil {
			return nil
		}
		m.editor = NewLineEditor("Rename folder", f.Name, f.Name, 128)

	case editRenameEntry:
		f, e := m.selectedFolder(), m.selectedEntry()
		if e == nil {
			return nil
		}
		m.rename.Start(f.ID, e)
		m.editor = NewLineEditor("Rename entry (empty restores the default)", e.DefaultName(m.host), e.CustomName, 128)
	}
	m.edit = mode
	return m.editor.Init()
}

func (m *BrowserModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	result, cmd := m.editor.Update(msg)
	switch result {
	case LineCancelled:
		m.rename.Cancel()
		m.endEdit()
	case LineSubmitted:
		m.commitEdit(m.editor.Value())
		m.endEdit()
	}
	return cmd
}

func (m *BrowserModel) endEdit() {
	m.edit = editNone
	m.editor = nil
	m.newParent = ""
}

func (m *BrowserModel) commitEdit(value string) {
	m.ClearMessage()
	switch m.edit {
	case editNewFolder:
		var created *domain.Folder
		parent := m.newParent
		m.run(func(ctx context.Context) (string, error) {
			r, err := commands.NewCreateFolderCommand(m.store, parent, value).Execute(ctx)
			if err != nil {
				return "", err
			}
			created = r.Folder
			return r.Message, nil
		})
		if created != nil {
			delete(m.collapsed, parent)
			m.selected = created.ID
			m.cursor = 0
			m.refreshRows()
		}

	case editRenameFolder:
		if f := m.selectedFolder(); f != nil && value != "" && value != f.Name {
			m.run(func(ctx context.Context) (string, error) {
				r, err := commands.NewRenameFolderCommand(m.store, f.ID, value).Execute(ctx)
				if err != nil {
					return "", err
				}
				return r.Message, nil
			})
		}

	case editRenameEntry:
		m.run(func(context.Context) (string, error) {
			e, err := m.rename.Commit(m.col, m.host, value)
			if err != nil {
				return "", err
			}
			if err := m.store.Save(m.col); err != nil {
				return "", err
			}
			return fmt.Sprintf("Renamed entry to %s", e.Name(m.host)), nil
		})
	}
}

// Editing reports whether an inline editor is open
func (m *BrowserModel) Editing() bool {
	return m.edit != editNone
}

// --- selection helpers ---

func (m *BrowserModel) refreshRows() {
	m.rows = m.rows[:0]
	if m.col == nil {
		return
	}
	var visit func(f *domain.Folder, depth int)
	visit = func(f *domain.Folder, depth int) {
		m.rows = append(m.rows, folderRow{folder: f, depth: depth})
		if m.collapsed[f.ID] {
			return
		}
		for _, child := range f.Children {
			visit(child, depth+1)
		}
	}
	for _, root := range m.col.Folders {
		visit(root, 0)
	}

	// a selection hidden by a collapse or a deletion falls back to a visible folder
	if m.selectedRow() < 0 {
		m.selected = m.visibleAncestor(m.selected)
	}
	m.clampCursor()
}

func (m *BrowserModel) visibleAncestor(id string) string {
	path := m.col.PathTo(id)
	for i := len(path) - 1; i >= 0; i-- {
		for _, r := range m.rows {
			if r.folder == path[i] {
				return r.folder.ID
			}
		}
	}
	if len(m.rows) > 0 {
		return m.rows[0].folder.ID
	}
	return ""
}

func (m *BrowserModel) selectedRow() int {
	for i, r := range m.rows {
		if r.folder.ID == m.selected {
			return i
		}
	}
	return -1
}

func (m *BrowserModel) selectedFolder() *domain.Folder {
	if i := m.selectedRow(); i >= 0 {
		return m.rows[i].folder
	}
	return nil
}

func (m *BrowserModel) selectedEntry() *domain.Entry {
	f := m.selectedFolder()
	if f == nil || m.cursor < 0 || m.cursor >= len(f.Entries) {
		return nil
	}
	return f.Entries[m.cursor]
}

func (m *BrowserModel) clampCursor() {
	f := m.selectedFolder()
	n := 0
	if f != nil {
		n = len(f.Entries)
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedFolderID returns the folder the browser has selected
func (m *BrowserModel) SelectedFolderID() string {
	return m.selected
}

// Focus returns the pane with focus
func (m *BrowserModel) Focus() Pane {
	return m.focus
}

// --- rendering ---

// View renders the browser
func (m *BrowserModel) View() string {
	if m.col == nil {
		if m.Message != "" {
			return styles.App.Render(m.RenderMessage())
		}
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Palette"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s  sort: %s", m.store.Location(), m.col.SortMode)))
	b.WriteString("\n\n")

	folderStyle, entryStyle := styles.PaneFocused, styles.Pane
	if m.focus == PaneEntries {
		folderStyle, entryStyle = styles.Pane, styles.PaneFocused
	}
	paneWidth := 36
	if m.Width > 0 {
		paneWidth = max(24, (m.Width-10)/2)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		folderStyle.Width(paneWidth).Render(m.renderFolders()),
		" ",
		entryStyle.Width(paneWidth).Render(m.renderEntries()),
	))
	b.WriteString("\n")

	if m.edit != editNone {
		b.WriteString("\n")
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHints([]keyHint{
		{"tab", "pane"},
		{"enter", "open"},
		{"n", "new"},
		{"r", "rename"},
		{"d", "delete"},
		{"s", "sort"},
		{"c", "copy id"},
		{"?", "help"},
		{"q", "quit"},
	}))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderFolders() string {
	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Folders"))
	b.WriteString("\n")
	for _, r := range m.rows {
		prefix := styles.TreeLeaf
		if len(r.folder.Children) > 0 {
			prefix = styles.TreeExpanded
			if m.collapsed[r.folder.ID] {
				prefix = styles.TreeCollapsed
			}
		}
		text := r.folder.Name
		if n := len(r.folder.Entries); n > 0 {
			text = fmt.Sprintf("%s (%d)", text, n)
		}
		style := styles.NodeFolder
		if r.folder.ID == m.selected {
			style = styles.NodeSelected
		}
		b.WriteString(strings.Repeat("  ", r.depth))
		b.WriteString(styles.TreeBranch.Render(prefix))
		b.WriteString(style.Render(text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BrowserModel) renderEntries() string {
	var b strings.Builder
	f := m.selectedFolder()
	title := "Entries"
	if f != nil {
		title = f.Name
	}
	b.WriteString(styles.PaneTitle.Render(title))
	b.WriteString("\n")
	if f == nil || len(f.Entries) == 0 {
		b.WriteString(styles.MutedText.Render("(empty)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range f.Entries {
		name := e.Name(m.host)
		if m.rename.IsRenaming(e) {
			name += " …"
		}
		var text string
		switch {
		case m.focus == PaneEntries && i == m.cursor:
			text = styles.NodeSelected.Render(name)
		case !e.IsValid(m.host):
			text = styles.NodeInvalid.Render(name)
		default:
			text = styles.NodeEntry.Render(name)
		}
		b.WriteString(styles.KindBadge(e.Kind))
		b.WriteString(" ")
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}
