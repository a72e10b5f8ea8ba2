package commands

import (
	"context"
	"sort"
	"strings"

	"palette/internal/domain"
	"palette/internal/ports"
)

// SearchResult is an entry or folder matching a query, with a relevance score
type SearchResult struct {
	EntryInfo
	IsFolder bool
	Score    int
}

// SearchCommand finds folders and entries by name with fuzzy matching
type SearchCommand struct {
	store ports.CollectionStore
	host  *domain.Host
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store ports.CollectionStore, host *domain.Host, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		host:  host,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	var candidates []SearchResult
	col.Walk(func(f *domain.Folder, _ int) bool {
		path := FolderPath(col, f.ID)
		candidates = append(candidates, SearchResult{
			EntryInfo: EntryInfo{FolderID: f.ID, FolderPath: path, Index: -1, Name: f.Name, Valid: true},
			IsFolder:  true,
		})
		for _, info := range describeEntries(c.host, f, path) {
			candidates = append(candidates, SearchResult{EntryInfo: info})
		}
		return true
	})

	return FuzzySort(candidates, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '/' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort drops non-matching candidates and sorts the rest by relevance
func FuzzySort(candidates []SearchResult, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(candidates))

	for _, r := range candidates {
		best := max(FuzzyScore(r.Name, query), FuzzyScore(r.FolderPath, query)/2)
		if best > 0 {
			r.Score = best
			scored = append(scored, r)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
