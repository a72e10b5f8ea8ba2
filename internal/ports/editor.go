package ports

import (
	"os/exec"

	"palette/internal/domain"
)

// EditorOpener opens resources in an external program
type EditorOpener interface {
	domain.Opener

	// Command returns an exec.Cmd for opening a resource in the editor.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(res *domain.Resource) (*exec.Cmd, error)
}
