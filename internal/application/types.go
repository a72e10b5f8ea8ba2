package application

import "palette/internal/domain"

// Re-export domain types for use by adapters
type (
	Collection = domain.Collection
	Folder     = domain.Folder
	Entry      = domain.Entry
	Resource   = domain.Resource
	Host       = domain.Host
	SortMode   = domain.SortMode
	EntryKind  = domain.EntryKind
)

const (
	SortUnsorted            = domain.SortUnsorted
	SortAlphabetical        = domain.SortAlphabetical
	SortReverseAlphabetical = domain.SortReverseAlphabetical

	EntryAsset    = domain.EntryAsset
	EntryMacro    = domain.EntryMacro
	EntryShortcut = domain.EntryShortcut
)

// ParseSortMode parses a sort mode name
func ParseSortMode(s string) (SortMode, error) {
	return domain.ParseSortMode(s)
}

// ParseEntryKind parses an entry kind name
func ParseEntryKind(s string) (EntryKind, error) {
	return domain.ParseEntryKind(s)
}
