package domain

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func folders(names ...string) []*Folder {
	var out []*Folder
	for i, n := range names {
		out = append(out, NewFolder(n, fmt.Sprintf("f%d", i)))
	}
	return out
}

func TestUniqueFolderName(t *testing.T) {
	tests := []struct {
		name     string
		desired  string
		siblings []string
		want     string
	}{
		{"free name kept", "Art", []string{"Audio"}, "Art"},
		{"no siblings", "New Folder", nil, "New Folder"},
		{"first clash", "New Folder", []string{"New Folder"}, "New Folder (1)"},
		{"consecutive clashes", "New Folder", []string{"New Folder", "New Folder (1)", "New Folder (2)"}, "New Folder (3)"},
		{"gap is filled", "New Folder", []string{"New Folder", "New Folder (2)"}, "New Folder (1)"},
		{"numbered desired continues", "Scenes (4)", []string{"Scenes (4)"}, "Scenes (5)"},
		{"parentheses without number", "Misc (old)", []string{"Misc (old)"}, "Misc (old) (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UniqueFolderName(tt.desired, folders(tt.siblings...))
			if err != nil {
				t.Fatalf("UniqueFolderName failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("UniqueFolderName(%q) = %q, want %q", tt.desired, got, tt.want)
			}
		})
	}
}

func TestUniqueFolderName_Exhausted(t *testing.T) {
	names := []string{"Full"}
	for i := 1; i <= MaxNameAttempts; i++ {
		names = append(names, fmt.Sprintf("Full (%d)", i))
	}

	_, err := UniqueFolderName("Full", folders(names...))
	if !errors.Is(err, ErrNameExhausted) {
		t.Errorf("expected ErrNameExhausted, got %v", err)
	}
}

func TestUniqueFolderName_NeverClashes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.SampledFrom([]string{"A", "New Folder", "Scenes (2)"}).Draw(rt, "base")
		count := rapid.IntRange(0, 20).Draw(rt, "count")
		var names []string
		for i := 0; i < count; i++ {
			n := rapid.IntRange(0, 30).Draw(rt, "n")
			if n == 0 {
				names = append(names, base)
			} else {
				names = append(names, fmt.Sprintf("%s (%d)", base, n))
			}
		}

		got, err := UniqueFolderName(base, folders(names...))
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		for _, n := range names {
			if n == got {
				rt.Fatalf("%q clashes with an existing sibling", got)
			}
		}
	})
}

func TestHumanizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Build", "Build"},
		{"OpenSceneView", "Open Scene View"},
		{"m_buildAll", "Build All"},
		{"_privateThing", "Private Thing"},
		{"kMaxValue", "Max Value"},
		{"ExportHTMLReport", "Export HTML Report"},
		{"bake_light_maps", "Bake light maps"},
		{"Build2D", "Build 2D"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := HumanizeName(tt.in); got != tt.want {
				t.Errorf("HumanizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
