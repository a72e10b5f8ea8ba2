package domain

import "slices"

// Folder is a node of the palette tree. It owns its children and entries.
type Folder struct {
	ID       string // Stable across structural edits, unique within a collection
	Name     string // Unique among siblings
	Children []*Folder
	Entries  []*Entry
}

// NewFolder creates an empty folder
func NewFolder(name, id string) *Folder {
	return &Folder{ID: id, Name: name}
}

// Walk visits the folder and its descendants depth first. Returning false
// from fn skips the folder's subtree.
func (f *Folder) Walk(fn func(f *Folder, depth int) bool) {
	f.walk(fn, 0)
}

func (f *Folder) walk(fn func(*Folder, int) bool, depth int) {
	if !fn(f, depth) {
		return
	}
	for _, child := range f.Children {
		child.walk(fn, depth+1)
	}
}

// Contains reports whether id names this folder or one of its descendants
func (f *Folder) Contains(id string) bool {
	found := false
	f.Walk(func(n *Folder, _ int) bool {
		if n.ID == id {
			found = true
		}
		return !found
	})
	return found
}

// VisitEntries calls fn for each valid entry in order. Entries found invalid
// when reached are removed from the folder. fn may add or remove entries;
// bounds are re-checked on every step. Returning false from fn stops the visit.
func (f *Folder) VisitEntries(h *Host, fn func(i int, e *Entry) bool) {
	for i := 0; i < len(f.Entries); {
		e := f.Entries[i]
		if !e.IsValid(h) {
			f.Entries = slices.Delete(f.Entries, i, i+1)
			continue
		}
		if !fn(i, e) {
			return
		}
		// fn may have shifted the list; resume after e, never before i
		switch {
		case i < len(f.Entries) && f.Entries[i] == e:
			i++
		case i > 0 && i <= len(f.Entries) && f.Entries[i-1] == e:
			// an earlier entry was removed, e now sits at i-1
		case i < len(f.Entries):
			if j := slices.Index(f.Entries[i:], e); j >= 0 {
				i += j + 1
			}
		}
	}
}

// ValidEntries returns the entries that still resolve, without removing the others
func (f *Folder) ValidEntries(h *Host) []*Entry {
	var valid []*Entry
	for _, e := range f.Entries {
		if e.IsValid(h) {
			valid = append(valid, e)
		}
	}
	return valid
}

// PurgeInvalid removes invalid entries and returns how many were dropped
func (f *Folder) PurgeInvalid(h *Host) int {
	before := len(f.Entries)
	f.VisitEntries(h, func(int, *Entry) bool { return true })
	return before - len(f.Entries)
}

// IndexOfChild returns the position of the child with the given id, or -1
func (f *Folder) IndexOfChild(id string) int {
	return indexOfFolder(f.Children, id)
}

func indexOfFolder(folders []*Folder, id string) int {
	return slices.IndexFunc(folders, func(f *Folder) bool { return f.ID == id })
}
