package application

import (
	"errors"
	"testing"

	"palette/internal/domain"
)

type mapResolver map[string]*domain.Resource

func (m mapResolver) Lookup(id string) (*domain.Resource, bool) {
	res, ok := m[id]
	return res, ok
}

func (m mapResolver) Identify(res *domain.Resource) (string, error) {
	id := "id:" + res.Path
	m[id] = res
	return id, nil
}

func newRenameFixture(t *testing.T) (*domain.Collection, *domain.Host, *domain.Folder) {
	t.Helper()
	r := mapResolver{}
	h := &domain.Host{Resolver: r}
	c := domain.NewCollection()
	c.SortMode = domain.SortAlphabetical
	f := c.Folders[0]
	for _, p := range []string{"Banana.png", "Apple.png"} {
		e, err := domain.NewAssetEntry(r, domain.NewResource(p))
		if err != nil {
			t.Fatalf("NewAssetEntry: %v", err)
		}
		if _, err := c.AddEntry(h, f.ID, e); err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
	}
	return c, h, f
}

func TestRenameSession_Commit(t *testing.T) {
	c, h, f := newRenameFixture(t)
	var s RenameSession

	apple := f.Entries[0]
	s.Start(f.ID, apple)
	if !s.IsRenaming(apple) || s.IsRenaming(f.Entries[1]) {
		t.Fatal("IsRenaming should only match the started entry")
	}

	e, err := s.Commit(c, h, "  Zucchini ")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if e != apple || e.CustomName != "Zucchini" {
		t.Errorf("renamed wrong entry or name: %q", e.CustomName)
	}
	if s.Active() {
		t.Error("session should end after Commit")
	}
	if f.Entries[1] != apple {
		t.Error("folder should be re-sorted after rename")
	}
}

func TestRenameSession_CommitAfterResort(t *testing.T) {
	c, h, f := newRenameFixture(t)
	var s RenameSession

	banana := f.Entries[1]
	s.Start(f.ID, banana)
	c.SetSortMode(h, domain.SortReverseAlphabetical)

	if _, err := s.Commit(c, h, "Cherry"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if banana.CustomName != "Cherry" {
		t.Errorf("expected banana renamed, got %q", banana.CustomName)
	}
}

func TestRenameSession_CancelAndIdle(t *testing.T) {
	c, h, f := newRenameFixture(t)
	var s RenameSession

	if _, err := s.Commit(c, h, "x"); !errors.Is(err, ErrNotRenaming) {
		t.Errorf("expected ErrNotRenaming, got %v", err)
	}

	e := f.Entries[0]
	e.CustomName = "Keep"
	s.Start(f.ID, e)
	if s.Original() != "Keep" {
		t.Errorf("Original() = %q", s.Original())
	}
	s.Cancel()
	if s.Active() || e.CustomName != "Keep" {
		t.Error("Cancel must end the session without renaming")
	}
}

func TestRenameSession_EntryRemoved(t *testing.T) {
	c, h, f := newRenameFixture(t)
	var s RenameSession

	s.Start(f.ID, f.Entries[0])
	if _, err := c.RemoveEntry(f.ID, 0); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if _, err := s.Commit(c, h, "x"); !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
