package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/adapters/macro"
	"palette/internal/application/commands"
	"palette/internal/config"
)

func testConfig(t *testing.T, files ...string) config.Config {
	t.Helper()
	project := t.TempDir()
	for _, f := range files {
		full := filepath.Join(project, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(f), 0644))
	}
	state := t.TempDir()
	return config.Config{
		ProjectRoot: project,
		Collection:  filepath.Join(state, "collection.yaml"),
		Index:       filepath.Join(state, "index.db"),
		SortMode:    "alphabetical",
	}
}

func TestOpen_EntriesSurviveRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "Assets/Hero.prefab", "tools/PaletteTools.go")

	env, err := Open(cfg, "test")
	require.NoError(t, err)

	_, err = commands.NewAddAssetCommand(env.Store, env.Host, "", "Assets/Hero.prefab").Execute(ctx)
	require.NoError(t, err)
	_, err = commands.NewAddMacroCommand(env.Store, env.Host, "", "tools/PaletteTools.go", "RebuildIndex").Execute(ctx)
	require.NoError(t, err)
	require.NoError(t, env.Close())

	env, err = Open(cfg, "test")
	require.NoError(t, err)
	t.Cleanup(func() { env.Close() })

	result, err := commands.NewListCommand(env.Store, env.Host, "").Execute(ctx)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	for _, e := range result.Entries {
		assert.True(t, e.Valid, "%s should still resolve", e.Name)
	}
	assert.Equal(t, "alphabetical", result.Collection.SortMode.String())
}

func TestOpen_RegistersTools(t *testing.T) {
	env, err := Open(testConfig(t), "test")
	require.NoError(t, err)
	t.Cleanup(func() { env.Close() })

	assert.Contains(t, env.Macros.Classes(), macro.ToolsClassName)
	assert.Equal(t, []string{"ClearClipboard", "PruneIndex", "RebuildIndex"}, env.Macros.Methods(macro.ToolsClassName))
	assert.Same(t, env.Index, env.Host.Resolver)
	assert.Equal(t, env.Config.Collection, env.Store.Location())
}

func TestOpen_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SortMode = "random"

	_, err := Open(cfg, "test")
	assert.Error(t, err)
}
