package commands

import (
	"context"
	"strings"

	"palette/internal/domain"
	"palette/internal/ports"
)

// EntryInfo is a flattened, display-ready view of one entry
type EntryInfo struct {
	FolderID   string
	FolderPath string // folder names from the root, joined with " / "
	Index      int
	Name       string
	Kind       domain.EntryKind
	Valid      bool
}

// ListResult holds the loaded collection and the entries that were asked for
type ListResult struct {
	Collection *domain.Collection
	Entries    []EntryInfo
}

// ListCommand lists the entries of one folder, or of every folder when
// FolderID is empty
type ListCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.CollectionStore, host *domain.Host, folderID string) *ListCommand {
	return &ListCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Collection: col}
	if c.FolderID != "" {
		f, err := col.FolderFor(c.FolderID)
		if err != nil {
			return nil, err
		}
		result.Entries = describeEntries(c.host, f, FolderPath(col, f.ID))
		return result, nil
	}

	col.Walk(func(f *domain.Folder, _ int) bool {
		result.Entries = append(result.Entries, describeEntries(c.host, f, FolderPath(col, f.ID))...)
		return true
	})
	return result, nil
}

func describeEntries(h *domain.Host, f *domain.Folder, path string) []EntryInfo {
	infos := make([]EntryInfo, 0, len(f.Entries))
	for i, e := range f.Entries {
		infos = append(infos, EntryInfo{
			FolderID:   f.ID,
			FolderPath: path,
			Index:      i,
			Name:       e.Name(h),
			Kind:       e.Kind,
			Valid:      e.IsValid(h),
		})
	}
	return infos
}

// FolderPath renders the names from the root down to id
func FolderPath(col *domain.Collection, id string) string {
	chain := col.PathTo(id)
	names := make([]string, 0, len(chain))
	for _, f := range chain {
		names = append(names, f.Name)
	}
	return strings.Join(names, " / ")
}
