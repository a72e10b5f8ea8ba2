package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"palette/internal/domain"
	"palette/internal/ports"
)

// Opener implements ports.EditorOpener for files under a project root
type Opener struct {
	projectRoot string
	editor      string // configured command line, may carry arguments
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener. editor overrides $EDITOR when set.
func NewOpener(projectRoot, editor string) *Opener {
	return &Opener{projectRoot: projectRoot, editor: editor}
}

// Open opens a resource in the user's preferred editor
func (o *Opener) Open(res *domain.Resource) error {
	cmd, err := o.Command(res)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a resource in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(res *domain.Resource) (*exec.Cmd, error) {
	if res == nil {
		return nil, fmt.Errorf("no resource to open")
	}
	args := strings.Fields(o.findEditor())
	if len(args) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	path := filepath.Join(o.projectRoot, filepath.FromSlash(res.Path))
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if o.editor != "" {
		return o.editor
	}

	// Check $EDITOR first
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
