package commands

import (
	"context"
	"testing"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "Lighting",
			query:     "Lighting",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "Lighting Presets",
			query:     "Lighting",
			wantScore: 150,
		},
		{
			name:      "substring match",
			target:    "Bake Lighting",
			query:     "Lighting",
			wantScore: 100,
		},
		{
			name:    "fuzzy match across words",
			target:  "Open Scene View",
			query:   "osv",
			wantMin: 1,
		},
		{
			name:      "no match",
			target:    "Lighting",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "Lighting",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "LIGHTING",
			query:   "lighting",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else {
				if score != 0 {
					t.Errorf("expected score 0, got %d", score)
				}
			}
		})
	}
}

func TestFuzzyScore_Ordering(t *testing.T) {
	query := "scene"

	exactScore := FuzzyScore("scene", query)
	prefixScore := FuzzyScore("scene view", query)
	containsScore := FuzzyScore("open scene", query)
	fuzzyScore := FuzzyScore("s_c_e_n_e", query)

	if exactScore < prefixScore {
		t.Errorf("exact match should score >= prefix: %d < %d", exactScore, prefixScore)
	}
	if prefixScore < containsScore {
		t.Errorf("prefix match should score >= contains: %d < %d", prefixScore, containsScore)
	}
	if containsScore <= fuzzyScore {
		t.Errorf("contains match should score higher than fuzzy: %d <= %d", containsScore, fuzzyScore)
	}
}

func TestSearchCommand(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHost("Scenes/Main.unity", "Scenes/Menu.unity", "Audio/Theme.ogg")
	store := newMemStore()
	scenes, _ := NewCreateFolderCommand(store, "", "Scenes").Execute(ctx)
	for _, p := range []string{"Scenes/Main.unity", "Scenes/Menu.unity", "Audio/Theme.ogg"} {
		if _, err := NewAddAssetCommand(store, h, scenes.Folder.ID, p).Execute(ctx); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	results, err := NewSearchCommand(store, h, "m").Execute(ctx)
	if err != nil || results != nil {
		t.Errorf("single character queries return nothing, got %v, %v", results, err)
	}

	results, err = NewSearchCommand(store, h, "menu").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(results) == 0 || results[0].Name != "Menu" || results[0].IsFolder {
		t.Fatalf("expected Menu first, got %+v", results)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted by score at %d", i)
		}
	}

	results, _ = NewSearchCommand(store, h, "scenes").Execute(ctx)
	if len(results) == 0 || !results[0].IsFolder {
		t.Errorf("expected the Scenes folder first, got %+v", results)
	}
}
