package domain

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// mixedEntries builds a shortcut "Zeta", a macro "Alpha", and assets "Gamma", "Beta"
func mixedEntries(t *testing.T) (*Host, []*Entry) {
	t.Helper()
	r := newFakeResolver("Gamma.png", "Beta.png", "x.png", "y.png", "Editor/Tools.cs")
	h := &Host{Resolver: r, Macros: &fakeMacros{static: map[string]bool{"Tools.Alpha": true}}}

	shortcut, _ := NewShortcutEntry(r, []*Resource{r.res("x.png"), r.res("y.png")})
	shortcut.CustomName = "Zeta"
	macro, _ := NewMacroEntry(r, r.res("Editor/Tools.cs"), "Alpha")

	return h, []*Entry{mustAsset(r, "Gamma.png"), macro, mustAsset(r, "Beta.png"), shortcut}
}

func TestSortEntries_Alphabetical(t *testing.T) {
	h, entries := mixedEntries(t)
	SortEntries(h, entries, SortAlphabetical)

	want := []string{"Zeta", "Alpha", "Beta", "Gamma"}
	if got := entryNames(h, entries); !equalStrings(got, want) {
		t.Errorf("alphabetical = %v, want %v", got, want)
	}
}

func TestSortEntries_ReverseKeepsClassOrder(t *testing.T) {
	h, entries := mixedEntries(t)
	SortEntries(h, entries, SortReverseAlphabetical)

	want := []string{"Zeta", "Alpha", "Gamma", "Beta"}
	if got := entryNames(h, entries); !equalStrings(got, want) {
		t.Errorf("reverse = %v, want %v", got, want)
	}
}

func TestSortEntries_UnsortedIsNoop(t *testing.T) {
	h, entries := mixedEntries(t)
	before := entryNames(h, entries)
	SortEntries(h, entries, SortUnsorted)
	if got := entryNames(h, entries); !equalStrings(got, before) {
		t.Errorf("unsorted changed order: %v -> %v", before, got)
	}
}

func TestSortEntries_InvalidLast(t *testing.T) {
	r := newFakeResolver("a.png", "b.png", "c.png")
	h := &Host{Resolver: r}
	entries := []*Entry{mustAsset(r, "a.png"), mustAsset(r, "b.png"), mustAsset(r, "c.png")}
	r.remove("a.png")
	entries[0].Refresh()

	for _, mode := range []SortMode{SortAlphabetical, SortReverseAlphabetical} {
		SortEntries(h, entries, mode)
		if entries[2].IsValid(h) {
			t.Errorf("%s: invalid entry should sort last, got %v", mode, entryNames(h, entries))
		}
	}
}

func TestSortEntries_StableOnTies(t *testing.T) {
	r := newFakeResolver("one/Same.png", "two/Same.png")
	h := &Host{Resolver: r}
	first := mustAsset(r, "one/Same.png")
	second := mustAsset(r, "two/Same.png")
	entries := []*Entry{first, second}

	SortEntries(h, entries, SortAlphabetical)
	if entries[0] != first || entries[1] != second {
		t.Error("equal entries must keep their relative order")
	}
}

func TestCompareEntries_IsStrictWeakOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := newFakeResolver("Editor/Tools.cs")
		h := &Host{Resolver: r, Macros: &fakeMacros{static: map[string]bool{}}}
		n := rapid.IntRange(1, 12).Draw(rt, "n")
		var entries []*Entry
		for i := 0; i < n; i++ {
			name := rapid.SampledFrom([]string{"a", "b", "c", "B"}).Draw(rt, "name")
			path := fmt.Sprintf("%d/%s.png", i, name)
			r.byID["id:"+path] = NewResource(path)
			var e *Entry
			switch rapid.IntRange(0, 2).Draw(rt, "kind") {
			case 0:
				e = mustAsset(r, path)
			case 1:
				e, _ = NewShortcutEntry(r, []*Resource{r.res(path)})
			default:
				h.Macros.(*fakeMacros).static["Tools."+name] = true
				e, _ = NewMacroEntry(r, r.res("Editor/Tools.cs"), name)
			}
			if rapid.Bool().Draw(rt, "invalid") {
				// an asset or shortcut whose only resource vanished
				if e.Kind != EntryMacro {
					r.remove(path)
					e.Refresh()
				}
			}
			entries = append(entries, e)
		}

		for _, a := range entries {
			if CompareEntries(h, a, a) != 0 {
				rt.Fatalf("irreflexivity violated for %q", a.Name(h))
			}
			for _, b := range entries {
				ab, ba := CompareEntries(h, a, b), CompareEntries(h, b, a)
				if sign(ab) != -sign(ba) {
					rt.Fatalf("asymmetry violated: %d vs %d", ab, ba)
				}
				for _, c := range entries {
					if ab < 0 && CompareEntries(h, b, c) < 0 && CompareEntries(h, a, c) >= 0 {
						rt.Fatalf("transitivity violated")
					}
				}
			}
		}
	})
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestParseSortMode(t *testing.T) {
	for _, m := range []SortMode{SortUnsorted, SortAlphabetical, SortReverseAlphabetical} {
		got, err := ParseSortMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseSortMode(%q) = %v, %v", m, got, err)
		}
		if m.Next().Next().Next() != m {
			t.Errorf("Next should cycle through three modes")
		}
	}
	if _, err := ParseSortMode("random"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
