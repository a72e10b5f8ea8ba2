package commands

import (
	"context"
	"fmt"

	"palette/internal/application"
	"palette/internal/domain"
	"palette/internal/ports"
)

// SortResult contains the result of changing the sort mode
type SortResult struct {
	Mode    domain.SortMode
	Message string
}

// SortCommand sets the collection sort mode and re-sorts every folder
type SortCommand struct {
	store ports.CollectionStore
	host  *domain.Host
	Mode  string // "" cycles to the next mode
}

// NewSortCommand creates a new SortCommand
func NewSortCommand(store ports.CollectionStore, host *domain.Host, mode string) *SortCommand {
	return &SortCommand{
		store: store,
		host:  host,
		Mode:  mode,
	}
}

// Validate checks if the sort mode is known
func (c *SortCommand) Validate() error {
	if c.Mode == "" {
		return nil
	}
	if _, err := domain.ParseSortMode(c.Mode); err != nil {
		return &application.ValidationError{
			Field:   "mode",
			Message: err.Error(),
		}
	}
	return nil
}

// Execute runs the sort command
func (c *SortCommand) Execute(ctx context.Context) (*SortResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	mode := col.SortMode.Next()
	if c.Mode != "" {
		mode, _ = domain.ParseSortMode(c.Mode)
	}
	col.SetSortMode(c.host, mode)
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	return &SortResult{
		Mode:    mode,
		Message: fmt.Sprintf("Sort mode: %s", mode),
	}, nil
}

// PurgeResult contains the result of purging invalid entries
type PurgeResult struct {
	Removed int
	Message string
}

// PurgeCommand removes every entry that no longer resolves
type PurgeCommand struct {
	store ports.CollectionStore
	host  *domain.Host
}

// NewPurgeCommand creates a new PurgeCommand
func NewPurgeCommand(store ports.CollectionStore, host *domain.Host) *PurgeCommand {
	return &PurgeCommand{store: store, host: host}
}

// Execute runs the purge command
func (c *PurgeCommand) Execute(ctx context.Context) (*PurgeResult, error) {
	if err := requireResolver(c.host); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	removed := col.PurgeInvalid(c.host)
	if removed > 0 {
		if err := save(c.store, col); err != nil {
			return nil, err
		}
	}

	return &PurgeResult{
		Removed: removed,
		Message: fmt.Sprintf("Removed %d invalid entr%s", removed, plural(removed, "y", "ies")),
	}, nil
}

// RefreshResult reports the collection state after dropping cached resolutions
type RefreshResult struct {
	Entries int
	Invalid int
	Message string
}

// RefreshCommand drops every cached resolution and re-sorts, so names and
// validity reflect the project as it is now
type RefreshCommand struct {
	store ports.CollectionStore
	host  *domain.Host
}

// NewRefreshCommand creates a new RefreshCommand
func NewRefreshCommand(store ports.CollectionStore, host *domain.Host) *RefreshCommand {
	return &RefreshCommand{store: store, host: host}
}

// Execute runs the refresh command
func (c *RefreshCommand) Execute(ctx context.Context) (*RefreshResult, error) {
	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	col.Refresh()
	col.Sort(c.host)
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	total, invalid := 0, 0
	col.Walk(func(f *domain.Folder, _ int) bool {
		total += len(f.Entries)
		invalid += len(f.Entries) - len(f.ValidEntries(c.host))
		return true
	})
	return &RefreshResult{
		Entries: total,
		Invalid: invalid,
		Message: fmt.Sprintf("Refreshed %d entries, %d invalid", total, invalid),
	}, nil
}

// ScanCommand registers every project file in the resource index and drops
// identifiers whose file is gone. With PruneOnly set it only drops them.
type ScanCommand struct {
	index     ports.ResourceIndex
	PruneOnly bool
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(index ports.ResourceIndex) *ScanCommand {
	return &ScanCommand{index: index}
}

// Execute runs the scan command
func (c *ScanCommand) Execute(ctx context.Context) (*ports.ScanStats, error) {
	if c.PruneOnly {
		pruned, err := c.index.Prune(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to prune index: %w", err)
		}
		return &ports.ScanStats{Pruned: pruned}, nil
	}
	stats, err := c.index.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return stats, nil
}

// RelocateResult contains the result of recording a file move
type RelocateResult struct {
	OldPath string
	NewPath string
	Message string
}

// RelocateCommand tells the resource index that a file was moved outside
// the palette, so entries pointing at it keep resolving
type RelocateCommand struct {
	index   ports.ResourceIndex
	OldPath string
	NewPath string
}

// NewRelocateCommand creates a new RelocateCommand
func NewRelocateCommand(index ports.ResourceIndex, oldPath, newPath string) *RelocateCommand {
	return &RelocateCommand{
		index:   index,
		OldPath: oldPath,
		NewPath: newPath,
	}
}

// Validate checks if both paths are given and differ
func (c *RelocateCommand) Validate() error {
	if err := application.ValidateRequired("oldPath", c.OldPath); err != nil {
		return err
	}
	if err := application.ValidateRequired("newPath", c.NewPath); err != nil {
		return err
	}
	if c.OldPath == c.NewPath {
		return &application.ValidationError{
			Field:   "newPath",
			Message: "must differ from the old path",
		}
	}
	return nil
}

// Execute runs the relocate command
func (c *RelocateCommand) Execute(ctx context.Context) (*RelocateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.index.Relocate(c.OldPath, c.NewPath); err != nil {
		return nil, fmt.Errorf("failed to relocate %s: %w", c.OldPath, err)
	}
	return &RelocateResult{
		OldPath: c.OldPath,
		NewPath: c.NewPath,
		Message: fmt.Sprintf("Moved %s to %s", c.OldPath, c.NewPath),
	}, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
