package application

import (
	"fmt"
	"slices"
	"strings"

	"palette/internal/domain"
)

// RenameSession tracks the single entry a host is currently renaming.
// Hosts keep one session per process; the model itself holds no rename state.
type RenameSession struct {
	folderID string
	entry    *domain.Entry
	original string
}

// Start begins renaming e, which lives in folderID. Any previous session is
// abandoned.
func (s *RenameSession) Start(folderID string, e *domain.Entry) {
	s.folderID = folderID
	s.entry = e
	s.original = e.CustomName
}

// IsRenaming reports whether e is the entry being renamed
func (s *RenameSession) IsRenaming(e *domain.Entry) bool {
	return s.entry != nil && s.entry == e
}

// Active reports whether any rename is in progress
func (s *RenameSession) Active() bool {
	return s.entry != nil
}

// Original returns the custom name the entry had when the session started
func (s *RenameSession) Original() string {
	return s.original
}

// Cancel ends the session without touching the entry
func (s *RenameSession) Cancel() {
	*s = RenameSession{}
}

// Commit applies name to the entry and ends the session. A blank name clears
// the custom name so the entry falls back to its default name. The entry is
// located by identity, so re-sorting since Start does not matter.
func (s *RenameSession) Commit(c *domain.Collection, h *domain.Host, name string) (*domain.Entry, error) {
	if s.entry == nil {
		return nil, ErrNotRenaming
	}
	defer s.Cancel()

	f, ok := c.Find(s.folderID)
	if !ok {
		return nil, fmt.Errorf("%w: folder %s", ErrNotFound, s.folderID)
	}
	i := slices.Index(f.Entries, s.entry)
	if i < 0 {
		return nil, fmt.Errorf("%w: entry no longer in %q", ErrNotFound, f.Name)
	}
	return c.RenameEntry(h, s.folderID, i, strings.TrimSpace(name))
}
