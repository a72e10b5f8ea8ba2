package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/domain"
)

type buildTools struct{ count int }

func (b *buildTools) Rebuild() { b.count++ }

func newTestRegistry(t *testing.T, calls *int) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(Class{
		Name: "BuildTools",
		Static: map[string]any{
			"BuildAll":  func() { *calls++ },
			"WithArg":   func(string) {},
			"WithValue": func() int { return 1 },
			"Explode":   func() { panic("boom") },
		},
		Instance: buildTools{},
	}))
	return r
}

func TestRegistry_Check(t *testing.T) {
	var calls int
	r := newTestRegistry(t, &calls)
	script := domain.NewResource("Editor/BuildTools.go")

	tests := []struct {
		name    string
		script  *domain.Resource
		method  string
		wantErr error
	}{
		{"static", script, "BuildAll", nil},
		{"parameter", script, "WithArg", domain.ErrBadSignature},
		{"return value", script, "WithValue", domain.ErrBadSignature},
		{"pointer receiver instance method", script, "Rebuild", domain.ErrInstanceMethod},
		{"missing method", script, "Nope", domain.ErrMethodNotFound},
		{"unknown class", domain.NewResource("Editor/Other.go"), "BuildAll", domain.ErrClassNotFound},
		{"no script", nil, "BuildAll", domain.ErrScriptMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Check(tt.script, tt.method)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_Run(t *testing.T) {
	var calls int
	r := newTestRegistry(t, &calls)
	script := domain.NewResource("Editor/BuildTools.go")

	require.NoError(t, r.Run(script, "BuildAll"))
	assert.Equal(t, 1, calls)

	assert.ErrorIs(t, r.Run(script, "WithArg"), domain.ErrBadSignature)

	err := r.Run(script, "Explode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked: boom")
}

func TestRegistry_DrivesMacroEntries(t *testing.T) {
	var calls int
	r := newTestRegistry(t, &calls)
	log := &messages{}
	script := domain.NewResource("Editor/BuildTools.go")
	h := &domain.Host{Resolver: staticResolver{script}, Macros: r, Log: log}

	ok, err := domain.NewMacroEntry(h.Resolver, script, "BuildAll")
	require.NoError(t, err)
	bad, err := domain.NewMacroEntry(h.Resolver, script, "Rebuild")
	require.NoError(t, err)

	assert.True(t, ok.IsValid(h))
	assert.False(t, bad.IsValid(h))

	ok.Open(h)
	bad.Open(h)
	assert.Equal(t, 1, calls)
	require.Len(t, log.list, 1)
	assert.Contains(t, log.list[0], "must be static")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(Class{}))
	assert.Error(t, r.Register(Class{Name: "X", Static: map[string]any{"NotFunc": 3}}))
	require.NoError(t, r.Register(Class{Name: "X"}))
	assert.Error(t, r.Register(Class{Name: "X"}))
}

func TestRegistry_Listing(t *testing.T) {
	var calls int
	r := newTestRegistry(t, &calls)
	require.NoError(t, r.Register(Class{Name: "Alpha"}))

	assert.Equal(t, []string{"Alpha", "BuildTools"}, r.Classes())
	assert.Equal(t, []string{"BuildAll", "Explode"}, r.Methods("BuildTools"))
	assert.Nil(t, r.Methods("Missing"))
}

type staticResolver struct{ res *domain.Resource }

func (s staticResolver) Lookup(id string) (*domain.Resource, bool) {
	return s.res, id == s.res.Path
}

func (s staticResolver) Identify(res *domain.Resource) (string, error) {
	return res.Path, nil
}

type messages struct{ list []string }

func (m *messages) Error(msg string) { m.list = append(m.list, msg) }
