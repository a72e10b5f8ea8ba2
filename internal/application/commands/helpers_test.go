package commands

import (
	"errors"
	"fmt"
	"strings"

	"palette/internal/domain"
)

// memStore keeps the collection in memory and counts saves
type memStore struct {
	col   *domain.Collection
	saves int
}

func newMemStore() *memStore {
	return &memStore{col: domain.NewCollection()}
}

func (s *memStore) Load() (*domain.Collection, error) {
	if s.col == nil {
		s.col = domain.NewCollection()
	}
	return s.col, nil
}

func (s *memStore) Save(c *domain.Collection) error {
	s.col = c
	s.saves++
	return nil
}

func (s *memStore) Location() string { return "memory" }

// fileResolver resolves identifiers "id:<path>" for the paths it holds
type fileResolver struct {
	files map[string]bool
}

func newFileResolver(paths ...string) *fileResolver {
	r := &fileResolver{files: make(map[string]bool)}
	for _, p := range paths {
		r.files[p] = true
	}
	return r
}

func (r *fileResolver) Lookup(id string) (*domain.Resource, bool) {
	path, ok := strings.CutPrefix(id, "id:")
	if !ok || !r.files[path] {
		return nil, false
	}
	return domain.NewResource(path), true
}

func (r *fileResolver) Identify(res *domain.Resource) (string, error) {
	if !r.files[res.Path] {
		return "", fmt.Errorf("%s: no such file", res.Path)
	}
	return "id:" + res.Path, nil
}

// classMacros knows static and instance methods keyed "Class.Method"
type classMacros struct {
	static   map[string]bool
	instance map[string]bool
	ran      []string
}

func (m *classMacros) Check(script *domain.Resource, method string) error {
	key := script.Name + "." + method
	switch {
	case m.static[key]:
		return nil
	case m.instance[key]:
		return domain.ErrInstanceMethod
	default:
		return domain.ErrMethodNotFound
	}
}

func (m *classMacros) Run(script *domain.Resource, method string) error {
	if err := m.Check(script, method); err != nil {
		return err
	}
	m.ran = append(m.ran, script.Name+"."+method)
	return nil
}

type recorder struct {
	opened   []string
	selected [][]string
	errors   []string
}

func (r *recorder) Open(res *domain.Resource) error {
	if res == nil {
		return errors.New("nothing to open")
	}
	r.opened = append(r.opened, res.Path)
	return nil
}

func (r *recorder) Select(resources []*domain.Resource) error {
	var paths []string
	for _, res := range resources {
		paths = append(paths, res.Path)
	}
	r.selected = append(r.selected, paths)
	return nil
}

func (r *recorder) Error(msg string) {
	r.errors = append(r.errors, msg)
}

func newHost(paths ...string) (*domain.Host, *fileResolver, *recorder) {
	r := newFileResolver(paths...)
	rec := &recorder{}
	h := &domain.Host{
		Resolver: r,
		Macros:   &classMacros{static: map[string]bool{"Tools.Build": true}, instance: map[string]bool{"Tools.Draw": true}},
		Opener:   rec,
		Selector: rec,
		Log:      rec,
	}
	return h, r, rec
}

func entryNames(h *domain.Host, f *domain.Folder) []string {
	var names []string
	for _, e := range f.Entries {
		names = append(names, e.Name(h))
	}
	return names
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
