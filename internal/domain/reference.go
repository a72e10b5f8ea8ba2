package domain

import (
	"fmt"
	"slices"
)

// Reference is a lazily resolved handle to a resource, addressed by a stable
// identifier. The identifier is fixed at construction; the resolution is
// memoized until Invalidate.
type Reference struct {
	id       string
	resolved bool
	res      *Resource
}

// NewReference identifies a live resource and caches it as the resolution
func NewReference(r Resolver, res *Resource) (Reference, error) {
	if res == nil {
		return Reference{}, fmt.Errorf("cannot reference a nil resource")
	}
	if r == nil {
		return Reference{}, fmt.Errorf("no resolver to identify %s", res.Path)
	}
	id, err := r.Identify(res)
	if err != nil {
		return Reference{}, fmt.Errorf("failed to identify %s: %w", res.Path, err)
	}
	return Reference{id: id, resolved: true, res: res}, nil
}

// ReferenceFromID rebuilds an unresolved reference from a persisted identifier
func ReferenceFromID(id string) Reference {
	return Reference{id: id}
}

// ID returns the stable identifier
func (ref *Reference) ID() string {
	return ref.id
}

// IsZero reports whether the reference was never assigned
func (ref *Reference) IsZero() bool {
	return ref.id == ""
}

// Resolve returns the referenced resource. A missing resource is a normal
// outcome and is memoized like any other.
func (ref *Reference) Resolve(r Resolver) (*Resource, bool) {
	if !ref.resolved {
		ref.res = nil
		if r != nil && ref.id != "" {
			if res, ok := r.Lookup(ref.id); ok {
				ref.res = res
			}
		}
		ref.resolved = true
	}
	return ref.res, ref.res != nil
}

// Invalidate drops the memoized resolution
func (ref *Reference) Invalidate() {
	ref.resolved = false
	ref.res = nil
}

// ReferenceList is an ordered list of identifiers with a memoized resolved view.
// Every mutation bumps the generation so values derived from the list can
// tell they are stale.
type ReferenceList struct {
	ids  []string
	view []*Resource
	gen  uint64
}

// ReferenceListFromIDs rebuilds a list from persisted identifiers
func ReferenceListFromIDs(ids []string) ReferenceList {
	return ReferenceList{ids: slices.Clone(ids)}
}

// Len returns the number of identifiers
func (l *ReferenceList) Len() int {
	return len(l.ids)
}

// IDs returns a copy of the identifiers in order
func (l *ReferenceList) IDs() []string {
	return slices.Clone(l.ids)
}

// At returns the identifier at index i
func (l *ReferenceList) At(i int) string {
	l.checkIndex(i, len(l.ids))
	return l.ids[i]
}

// Add appends a live resource
func (l *ReferenceList) Add(r Resolver, res *Resource) error {
	id, err := identify(r, res)
	if err != nil {
		return err
	}
	l.ids = append(l.ids, id)
	l.Invalidate()
	return nil
}

// Insert places a live resource at index i (0 <= i <= Len)
func (l *ReferenceList) Insert(i int, r Resolver, res *Resource) error {
	l.checkIndex(i, len(l.ids)+1)
	id, err := identify(r, res)
	if err != nil {
		return err
	}
	l.ids = slices.Insert(l.ids, i, id)
	l.Invalidate()
	return nil
}

// Set replaces the identifier at index i
func (l *ReferenceList) Set(i int, r Resolver, res *Resource) error {
	l.checkIndex(i, len(l.ids))
	id, err := identify(r, res)
	if err != nil {
		return err
	}
	l.ids[i] = id
	l.Invalidate()
	return nil
}

// RemoveAt deletes the identifier at index i
func (l *ReferenceList) RemoveAt(i int) {
	l.checkIndex(i, len(l.ids))
	l.ids = slices.Delete(l.ids, i, i+1)
	l.Invalidate()
}

// Clear removes every identifier
func (l *ReferenceList) Clear() {
	l.ids = nil
	l.Invalidate()
}

// Resolved returns one slot per identifier, nil where it no longer resolves
func (l *ReferenceList) Resolved(r Resolver) []*Resource {
	if l.view == nil {
		view := make([]*Resource, len(l.ids))
		if r != nil {
			for i, id := range l.ids {
				if res, ok := r.Lookup(id); ok {
					view[i] = res
				}
			}
		}
		l.view = view
	}
	return l.view
}

// Valid returns the resolved resources, skipping the ones that no longer resolve
func (l *ReferenceList) Valid(r Resolver) []*Resource {
	var valid []*Resource
	for _, res := range l.Resolved(r) {
		if res != nil {
			valid = append(valid, res)
		}
	}
	return valid
}

// Invalidate drops the memoized resolved view
func (l *ReferenceList) Invalidate() {
	l.view = nil
	l.gen++
}

// Generation changes whenever the list is mutated or invalidated
func (l *ReferenceList) Generation() uint64 {
	return l.gen
}

func (l *ReferenceList) checkIndex(i, limit int) {
	if i < 0 || i >= limit {
		panic(fmt.Sprintf("reference list index %d out of range [0,%d)", i, limit))
	}
}

func identify(r Resolver, res *Resource) (string, error) {
	ref, err := NewReference(r, res)
	if err != nil {
		return "", err
	}
	return ref.id, nil
}
