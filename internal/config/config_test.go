package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/domain"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvProject, "")
	t.Setenv(EnvCollection, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectRoot, cfg.ProjectRoot)
	assert.Equal(t, DefaultCollectionPath(), cfg.Collection)
	assert.Equal(t, domain.SortUnsorted, cfg.InitialSortMode())
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
project_root = "/work/game"
collection = "/work/palette.yaml"
sort_mode = "alphabetical"
verbosity = 2
editor = "code --wait"
`), 0644))

	t.Setenv(EnvProject, "")
	t.Setenv(EnvCollection, "")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/work/game", cfg.ProjectRoot)
	assert.Equal(t, "/work/palette.yaml", cfg.Collection)
	assert.Equal(t, domain.SortAlphabetical, cfg.InitialSortMode())
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "code --wait", cfg.Editor)

	t.Setenv(EnvProject, "/override")
	cfg, err = LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/override", cfg.ProjectRoot)
}

func TestLoadFrom_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "project_root = "},
		{"unknown sort mode", `sort_mode = "random"`},
		{"negative verbosity", "verbosity = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	t.Setenv(EnvProject, "")
	t.Setenv(EnvCollection, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Editor = "hx"
	cfg.SortMode = "reverse"
	require.NoError(t, cfg.Write(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", Path())
}
