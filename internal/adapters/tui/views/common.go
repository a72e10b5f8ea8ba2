package views

import (
	"fmt"
	"strings"

	"palette/internal/adapters/tui/styles"
	"palette/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage renders the status message, if any
func (s *ViewState) RenderMessage() string {
	if s.Message == "" {
		return ""
	}
	if s.MessageErr {
		return styles.ErrorMsg.Render(s.Message)
	}
	return styles.Success.Render(s.Message)
}

// Clipboard receives text copied from the browser
type Clipboard interface {
	Copy(text string) error
}

// DeferredOpener implements domain.Opener by remembering the resource an
// entry asked to open. The app launches the editor afterwards with
// tea.ExecProcess so the terminal is handed over cleanly.
type DeferredOpener struct {
	pending *domain.Resource
}

// Open records res
func (o *DeferredOpener) Open(res *domain.Resource) error {
	if res == nil {
		return fmt.Errorf("no resource to open")
	}
	o.pending = res
	return nil
}

// Take returns the recorded resource and forgets it
func (o *DeferredOpener) Take() *domain.Resource {
	res := o.pending
	o.pending = nil
	return res
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

type SwitchToDeleteMsg struct {
	Folder *domain.Folder
}

// OpenInEditorMsg asks the app to open a resource in the external editor
type OpenInEditorMsg struct {
	Resource *domain.Resource
}

// DeleteConfirmedMsg carries the folder the user agreed to delete
type DeleteConfirmedMsg struct {
	FolderID string
}

func renderKeyHints(keys []keyHint) string {
	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

type keyHint struct {
	key  string
	desc string
}
