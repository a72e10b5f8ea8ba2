package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// DefaultFolderName names the folder synthesized for an empty collection
const DefaultFolderName = "Default"

// NewFolderName is the starting name for folders created without one
const NewFolderName = "New Folder"

var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrCyclicMove     = errors.New("cannot move a folder into itself")
)

// Collection is the persisted root of the palette: a forest of folders
type Collection struct {
	Folders  []*Folder
	SortMode SortMode
}

// NewCollection returns a collection holding the default folder
func NewCollection() *Collection {
	c := &Collection{}
	c.EnsureAtLeastOneFolder()
	return c
}

// NewFolderID mints a folder identifier
func NewFolderID() string {
	return uuid.NewString()
}

// EnsureAtLeastOneFolder synthesizes the default folder when the forest is empty
func (c *Collection) EnsureAtLeastOneFolder() {
	if len(c.Folders) == 0 {
		c.Folders = append(c.Folders, NewFolder(DefaultFolderName, NewFolderID()))
	}
}

// EnsureIdentifiers gives a fresh identifier to every folder that has none or
// shares one with a folder visited earlier. Returns how many were assigned.
func (c *Collection) EnsureIdentifiers() int {
	seen := make(map[string]bool)
	assigned := 0
	c.Walk(func(f *Folder, _ int) bool {
		if f.ID == "" || seen[f.ID] {
			f.ID = NewFolderID()
			assigned++
		}
		seen[f.ID] = true
		return true
	})
	return assigned
}

// EnsureUniqueNames renames folders that repeat an earlier sibling's name,
// keeping the first occurrence. Returns how many were renamed.
func (c *Collection) EnsureUniqueNames() (int, error) {
	renamed, err := uniqueSiblingNames(c.Folders)
	if err != nil {
		return renamed, err
	}
	var walkErr error
	c.Walk(func(f *Folder, _ int) bool {
		if walkErr != nil {
			return false
		}
		n, err := uniqueSiblingNames(f.Children)
		renamed += n
		walkErr = err
		return err == nil
	})
	return renamed, walkErr
}

func uniqueSiblingNames(siblings []*Folder) (int, error) {
	renamed := 0
	for i, f := range siblings {
		unique, err := UniqueFolderName(f.Name, siblings[:i])
		if err != nil {
			return renamed, err
		}
		if unique != f.Name {
			f.Name = unique
			renamed++
		}
	}
	return renamed, nil
}

// Walk visits every folder depth first, roots in order
func (c *Collection) Walk(fn func(f *Folder, depth int) bool) {
	for _, root := range c.Folders {
		root.Walk(fn)
	}
}

// Find returns the folder with the given identifier
func (c *Collection) Find(id string) (*Folder, bool) {
	path := c.PathTo(id)
	if len(path) == 0 {
		return nil, false
	}
	return path[len(path)-1], true
}

// PathTo returns the chain of folders from a root down to id, or nil
func (c *Collection) PathTo(id string) []*Folder {
	for _, root := range c.Folders {
		if path := pathTo(root, id, nil); path != nil {
			return path
		}
	}
	return nil
}

func pathTo(f *Folder, id string, prefix []*Folder) []*Folder {
	prefix = append(prefix, f)
	if f.ID == id {
		return slices.Clone(prefix)
	}
	for _, child := range f.Children {
		if path := pathTo(child, id, prefix); path != nil {
			return path
		}
	}
	return nil
}

// Locate returns the parent of id (nil for a root folder) and its index in
// the parent's child list
func (c *Collection) Locate(id string) (parent *Folder, index int, ok bool) {
	path := c.PathTo(id)
	switch len(path) {
	case 0:
		return nil, -1, false
	case 1:
		return nil, indexOfFolder(c.Folders, id), true
	default:
		parent = path[len(path)-2]
		return parent, parent.IndexOfChild(id), true
	}
}

// siblings returns the child list that parentID designates ("" = roots)
func (c *Collection) siblings(parentID string) (*[]*Folder, error) {
	if parentID == "" {
		return &c.Folders, nil
	}
	parent, ok := c.Find(parentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, parentID)
	}
	return &parent.Children, nil
}

// AddFolder creates a folder under parentID ("" for a root folder). The name
// is made unique among the new siblings.
func (c *Collection) AddFolder(parentID, name string) (*Folder, error) {
	list, err := c.siblings(parentID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = NewFolderName
	}
	unique, err := UniqueFolderName(name, *list)
	if err != nil {
		return nil, err
	}
	f := NewFolder(unique, NewFolderID())
	*list = append(*list, f)
	return f, nil
}

// RenameFolder renames a folder, resolving clashes with its siblings
func (c *Collection) RenameFolder(id, name string) (string, error) {
	f, ok := c.Find(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	parent, _, _ := c.Locate(id)
	siblings := c.Folders
	if parent != nil {
		siblings = parent.Children
	}
	others := slices.DeleteFunc(slices.Clone(siblings), func(s *Folder) bool { return s.ID == id })
	unique, err := UniqueFolderName(name, others)
	if err != nil {
		return "", err
	}
	f.Name = unique
	return unique, nil
}

// MoveFolder re-attaches a folder and its whole subtree under parentID ("" for
// root) at index. The index is clamped into the target list after detaching.
// The moved folder's name is made unique among its new siblings.
func (c *Collection) MoveFolder(id, parentID string, index int) error {
	f, ok := c.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	if parentID != "" && f.Contains(parentID) {
		return fmt.Errorf("%w: %s into %s", ErrCyclicMove, id, parentID)
	}
	target, err := c.siblings(parentID)
	if err != nil {
		return err
	}

	oldParent, oldIndex, _ := c.Locate(id)
	source := &c.Folders
	if oldParent != nil {
		source = &oldParent.Children
	}

	others := slices.DeleteFunc(slices.Clone(*target), func(s *Folder) bool { return s.ID == id })
	name, err := UniqueFolderName(f.Name, others)
	if err != nil {
		return err
	}

	*source = slices.Delete(*source, oldIndex, oldIndex+1)
	index = max(0, min(index, len(*target)))
	*target = slices.Insert(*target, index, f)
	f.Name = name
	return nil
}

// DeleteFolder removes a folder and its subtree and returns the folder that
// should be selected afterwards. Deleting the last root folder is refused and
// leaves everything unchanged. selected only moves when it pointed into the
// removed subtree:
//
//	parent left without children -> parent
//	removed folder was last      -> new last sibling
//	otherwise                    -> sibling now at the removed index
func (c *Collection) DeleteFolder(id, selected string) string {
	f, ok := c.Find(id)
	if !ok {
		return selected
	}
	parent, index, _ := c.Locate(id)
	list := &c.Folders
	if parent != nil {
		list = &parent.Children
	}
	if parent == nil && len(c.Folders) <= 1 {
		return selected
	}

	dangling := f.Contains(selected)
	*list = slices.Delete(*list, index, index+1)
	if !dangling {
		return selected
	}

	switch {
	case len(*list) == 0:
		return parent.ID
	case index >= len(*list):
		return (*list)[len(*list)-1].ID
	default:
		return (*list)[index].ID
	}
}

// FolderFor resolves a folder id, falling back to the first root folder for ""
func (c *Collection) FolderFor(id string) (*Folder, error) {
	if id == "" {
		c.EnsureAtLeastOneFolder()
		return c.Folders[0], nil
	}
	f, ok := c.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	return f, nil
}

// AddEntry appends an entry to a folder and re-applies the sort mode
func (c *Collection) AddEntry(h *Host, folderID string, e *Entry) (*Folder, error) {
	f, err := c.FolderFor(folderID)
	if err != nil {
		return nil, err
	}
	f.Entries = append(f.Entries, e)
	SortEntries(h, f.Entries, c.SortMode)
	return f, nil
}

// EntryAt returns the entry at index i of a folder
func (c *Collection) EntryAt(folderID string, i int) (*Folder, *Entry, error) {
	f, err := c.FolderFor(folderID)
	if err != nil {
		return nil, nil, err
	}
	if i < 0 || i >= len(f.Entries) {
		return nil, nil, fmt.Errorf("%w: index %d in %q", ErrEntryNotFound, i, f.Name)
	}
	return f, f.Entries[i], nil
}

// RemoveEntry deletes the entry at index i of a folder
func (c *Collection) RemoveEntry(folderID string, i int) (*Entry, error) {
	f, e, err := c.EntryAt(folderID, i)
	if err != nil {
		return nil, err
	}
	f.Entries = slices.Delete(f.Entries, i, i+1)
	return e, nil
}

// RenameEntry sets (or clears, with "") the custom name of an entry and
// re-applies the sort mode
func (c *Collection) RenameEntry(h *Host, folderID string, i int, name string) (*Entry, error) {
	f, e, err := c.EntryAt(folderID, i)
	if err != nil {
		return nil, err
	}
	e.CustomName = name
	e.Refresh()
	SortEntries(h, f.Entries, c.SortMode)
	return e, nil
}

// MoveEntry moves the entry at srcIndex of srcID to dstIndex of dstID
func (c *Collection) MoveEntry(h *Host, srcID string, srcIndex int, dstID string, dstIndex int) error {
	src, e, err := c.EntryAt(srcID, srcIndex)
	if err != nil {
		return err
	}
	dst, err := c.FolderFor(dstID)
	if err != nil {
		return err
	}
	src.Entries = slices.Delete(src.Entries, srcIndex, srcIndex+1)
	dstIndex = max(0, min(dstIndex, len(dst.Entries)))
	dst.Entries = slices.Insert(dst.Entries, dstIndex, e)
	SortEntries(h, dst.Entries, c.SortMode)
	return nil
}

// SetSortMode changes the sort mode and re-sorts every folder
func (c *Collection) SetSortMode(h *Host, mode SortMode) {
	c.SortMode = mode
	c.Sort(h)
}

// Sort re-applies the current sort mode to every folder
func (c *Collection) Sort(h *Host) {
	c.Walk(func(f *Folder, _ int) bool {
		SortEntries(h, f.Entries, c.SortMode)
		return true
	})
}

// PurgeInvalid removes invalid entries everywhere and returns the count
func (c *Collection) PurgeInvalid(h *Host) int {
	removed := 0
	c.Walk(func(f *Folder, _ int) bool {
		removed += f.PurgeInvalid(h)
		return true
	})
	return removed
}

// Refresh drops cached derived state on every entry
func (c *Collection) Refresh() {
	c.Walk(func(f *Folder, _ int) bool {
		for _, e := range f.Entries {
			e.Refresh()
		}
		return true
	})
}

// CountEntries returns the number of entries in the whole tree
func (c *Collection) CountEntries() int {
	n := 0
	c.Walk(func(f *Folder, _ int) bool {
		n += len(f.Entries)
		return true
	})
	return n
}
