package ports

import (
	"context"

	"palette/internal/domain"
)

// ScanStats holds statistics from a project scan
type ScanStats struct {
	Registered int // Paths seen for the first time
	Updated    int // Known paths whose mtime changed
	Pruned     int // Rows dropped because their file vanished
	Scanned    int
}

// ResourceIndex is the persistent identifier table behind the Resolver.
// Identifiers survive renames as long as moves go through Relocate.
type ResourceIndex interface {
	domain.Resolver

	// Lifecycle
	Open(projectRoot string) error
	Close() error

	// Scan registers every file under the project root
	Scan(ctx context.Context) (*ScanStats, error)

	// Relocate records that a resource moved, keeping its identifier
	Relocate(oldPath, newPath string) error

	// Prune drops identifiers whose file no longer exists
	Prune(ctx context.Context) (int, error)

	// PathOf returns the recorded path of an identifier, even if the file is gone
	PathOf(id string) (string, bool)
}
