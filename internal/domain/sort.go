package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortMode controls how a folder's entries are ordered
type SortMode int

const (
	SortUnsorted SortMode = iota
	SortAlphabetical
	SortReverseAlphabetical
)

func (m SortMode) String() string {
	switch m {
	case SortAlphabetical:
		return "alphabetical"
	case SortReverseAlphabetical:
		return "reverse"
	default:
		return "unsorted"
	}
}

// Next cycles unsorted -> alphabetical -> reverse -> unsorted
func (m SortMode) Next() SortMode {
	return (m + 1) % 3
}

// ParseSortMode accepts the names produced by SortMode.String
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unsorted", "none":
		return SortUnsorted, nil
	case "alphabetical", "alpha", "az":
		return SortAlphabetical, nil
	case "reverse", "reverse-alphabetical", "za":
		return SortReverseAlphabetical, nil
	default:
		return SortUnsorted, fmt.Errorf("unknown sort mode: %q", s)
	}
}

// CompareEntries orders valid entries before invalid ones, then by sort
// class, then by ordinal name. Invalid entries compare equal to each other.
func CompareEntries(h *Host, a, b *Entry) int {
	return compareEntries(h, a, b, false)
}

func compareEntries(h *Host, a, b *Entry, reverseNames bool) int {
	av, bv := a.IsValid(h), b.IsValid(h)
	switch {
	case !av && !bv:
		return 0
	case !av:
		return 1
	case !bv:
		return -1
	}
	if c := cmp.Compare(a.SortClass(), b.SortClass()); c != 0 {
		return c
	}
	c := strings.Compare(a.Name(h), b.Name(h))
	if reverseNames {
		return -c
	}
	return c
}

// SortEntries stably orders entries in place. Reverse mode only flips the
// name comparison within a sort class.
func SortEntries(h *Host, entries []*Entry, mode SortMode) {
	switch mode {
	case SortAlphabetical:
		slices.SortStableFunc(entries, func(a, b *Entry) int {
			return compareEntries(h, a, b, false)
		})
	case SortReverseAlphabetical:
		slices.SortStableFunc(entries, func(a, b *Entry) int {
			return compareEntries(h, a, b, true)
		})
	}
}
