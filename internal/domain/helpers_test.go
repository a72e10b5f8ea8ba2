package domain

import (
	"fmt"
	"strings"
)

// fakeResolver identifies resources by path and counts lookups
type fakeResolver struct {
	byID    map[string]*Resource
	lookups int
}

func newFakeResolver(paths ...string) *fakeResolver {
	r := &fakeResolver{byID: make(map[string]*Resource)}
	for _, p := range paths {
		r.byID["id:"+p] = NewResource(p)
	}
	return r
}

func (r *fakeResolver) Lookup(id string) (*Resource, bool) {
	r.lookups++
	res, ok := r.byID[id]
	return res, ok
}

func (r *fakeResolver) Identify(res *Resource) (string, error) {
	if res.Path == "" {
		return "", fmt.Errorf("empty path")
	}
	id := "id:" + res.Path
	if _, ok := r.byID[id]; !ok {
		r.byID[id] = res
	}
	return id, nil
}

func (r *fakeResolver) res(path string) *Resource {
	return r.byID["id:"+path]
}

func (r *fakeResolver) remove(path string) {
	delete(r.byID, "id:"+path)
}

// fakeMacros knows static methods as "Class.Method" keys
type fakeMacros struct {
	static   map[string]bool
	instance map[string]bool
	params   map[string]bool
	ran      []string
}

func (m *fakeMacros) Check(script *Resource, method string) error {
	key := script.Name + "." + method
	switch {
	case m.static[key]:
		return nil
	case m.instance[key]:
		return ErrInstanceMethod
	case m.params[key]:
		return fmt.Errorf("%s takes parameters: %w", key, ErrBadSignature)
	}
	for k := range m.static {
		if strings.HasPrefix(k, script.Name+".") {
			return ErrMethodNotFound
		}
	}
	return ErrClassNotFound
}

func (m *fakeMacros) Run(script *Resource, method string) error {
	if err := m.Check(script, method); err != nil {
		return err
	}
	m.ran = append(m.ran, script.Name+"."+method)
	return nil
}

type recordingLog struct {
	messages []string
}

func (l *recordingLog) Error(msg string) {
	l.messages = append(l.messages, msg)
}

type recordingOpener struct {
	opened []string
}

func (o *recordingOpener) Open(res *Resource) error {
	o.opened = append(o.opened, res.Path)
	return nil
}

type recordingSelector struct {
	selected [][]string
}

func (s *recordingSelector) Select(resources []*Resource) error {
	var paths []string
	for _, r := range resources {
		paths = append(paths, r.Path)
	}
	s.selected = append(s.selected, paths)
	return nil
}

func mustAsset(r *fakeResolver, path string) *Entry {
	e, err := NewAssetEntry(r, r.res(path))
	if err != nil {
		panic(err)
	}
	return e
}
