package clipboard

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"palette/internal/domain"
)

// Selector implements domain.Selector for hosts without a selection of their
// own: "selecting" resources copies their paths, one per line, so they can be
// pasted into a shell or an editor's open dialog.
type Selector struct {
	projectRoot string
	write       func(text string) error
	last        []string
}

// Ensure Selector implements domain.Selector
var _ domain.Selector = (*Selector)(nil)

// NewSelector creates a selector writing absolute paths under projectRoot.
// An empty projectRoot writes project relative paths.
func NewSelector(projectRoot string) *Selector {
	return &Selector{projectRoot: projectRoot, write: clipboard.WriteAll}
}

// Select copies the resource paths to the clipboard
func (s *Selector) Select(resources []*domain.Resource) error {
	paths := make([]string, 0, len(resources))
	for _, res := range resources {
		if res == nil {
			continue
		}
		p := res.Path
		if s.projectRoot != "" {
			p = filepath.Join(s.projectRoot, filepath.FromSlash(res.Path))
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to select")
	}

	if err := s.Copy(strings.Join(paths, "\n")); err != nil {
		return err
	}
	s.last = paths
	return nil
}

// Copy puts arbitrary text on the clipboard
func (s *Selector) Copy(text string) error {
	if err := s.write(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Last returns the paths of the most recent selection
func (s *Selector) Last() []string {
	return s.last
}
