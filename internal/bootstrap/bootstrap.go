// Package bootstrap wires the adapters every palette binary shares: the
// resource index, the collection store, the macro registry and the host
// collaborators built on them.
package bootstrap

import (
	"fmt"

	"github.com/rs/zerolog"

	"palette/internal/adapters/clipboard"
	"palette/internal/adapters/editor"
	"palette/internal/adapters/macro"
	"palette/internal/adapters/sqlite"
	"palette/internal/adapters/store"
	"palette/internal/config"
	"palette/internal/domain"
	"palette/internal/logging"
)

// Env holds the opened adapters for one process
type Env struct {
	Config    config.Config
	Index     *sqlite.Index
	Store     *store.FileStore
	Macros    *macro.Registry
	Editor    *editor.Opener
	Clipboard *clipboard.Selector
	Log       *logging.HostLogger
	Host      *domain.Host

	logger zerolog.Logger
}

// Open opens the resource index for cfg.ProjectRoot and builds the host.
// component names the binary in log lines.
func Open(cfg config.Config, component string) (*Env, error) {
	logger := logging.GetLogger(component)
	done := logging.LogOperationStart(logger, "bootstrap")
	defer done()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idx := sqlite.NewIndex()
	if cfg.Index != "" {
		idx = sqlite.NewIndexAt(cfg.Index)
	}
	if err := idx.Open(cfg.ProjectRoot); err != nil {
		return nil, fmt.Errorf("failed to open resource index: %w", err)
	}
	root := idx.ProjectRoot()

	fs := store.NewFileStore(cfg.Collection)
	fs.SetInitialSortMode(cfg.InitialSortMode())

	registry := macro.NewRegistry()
	if err := registry.Register(macro.Tools(idx)); err != nil {
		idx.Close()
		return nil, err
	}

	env := &Env{
		Config:    cfg,
		Index:     idx,
		Store:     fs,
		Macros:    registry,
		Editor:    editor.NewOpener(root, cfg.Editor),
		Clipboard: clipboard.NewSelector(root),
		Log:       logging.NewHostLogger(component),
		logger:    logger,
	}
	env.Host = &domain.Host{
		Resolver: idx,
		Macros:   registry,
		Opener:   env.Editor,
		Selector: env.Clipboard,
		Log:      env.Log,
	}

	logger.Info().
		Str("project", root).
		Str("collection", fs.Location()).
		Str("index", idx.DatabasePath()).
		Msg("Workspace opened")
	return env, nil
}

// Close releases the resource index
func (e *Env) Close() error {
	if err := e.Index.Close(); err != nil {
		e.logger.Warn().Err(err).Msg("Failed to close resource index")
		return err
	}
	return nil
}
