package render

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"palette/internal/application/commands"
	"palette/internal/ports"
)

func newTable(buf *strings.Builder) *tablewriter.Table {
	return tablewriter.NewTable(buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		})),
	)
}

// RenderEntries lists entries with their folder, index, kind and status
func RenderEntries(entries []commands.EntryInfo) (string, error) {
	if len(entries) == 0 {
		return Gold("No entries found.\n"), nil
	}

	var buf strings.Builder
	table := newTable(&buf)
	table.Header(LightBlue("Folder"), LightBlue("Folder ID"), LightBlue("#"), LightBlue("Kind"), LightBlue("Name"), LightBlue("Status"))

	data := make([][]string, len(entries))
	for i, e := range entries {
		status := Green("ok")
		if !e.Valid {
			status = Red("invalid")
		}
		data[i] = []string{e.FolderPath, Grey(e.FolderID), fmt.Sprintf("%d", e.Index), e.Kind.String(), e.Name, status}
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("error formatting entries: %v", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("error rendering entries: %v", err)
	}
	return buf.String(), nil
}

// RenderSearch lists search hits by relevance
func RenderSearch(results []commands.SearchResult) (string, error) {
	if len(results) == 0 {
		return Gold("No matches.\n"), nil
	}

	var buf strings.Builder
	table := newTable(&buf)
	table.Header(LightBlue("Score"), LightBlue("Folder"), LightBlue("Folder ID"), LightBlue("#"), LightBlue("Name"))

	data := make([][]string, len(results))
	for i, r := range results {
		index := fmt.Sprintf("%d", r.Index)
		name := r.Name
		if r.IsFolder {
			index = "-"
			name = Gold(name + "/")
		}
		data[i] = []string{fmt.Sprintf("%d", r.Score), r.FolderPath, Grey(r.FolderID), index, name}
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("error formatting results: %v", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("error rendering results: %v", err)
	}
	return buf.String(), nil
}

// RenderScanStats summarizes an index scan
func RenderScanStats(stats *ports.ScanStats) (string, error) {
	var buf strings.Builder
	table := newTable(&buf)
	table.Header(LightBlue("Scanned"), LightBlue("Registered"), LightBlue("Updated"), LightBlue("Pruned"))
	row := []string{
		fmt.Sprintf("%d", stats.Scanned),
		Green(fmt.Sprintf("%d", stats.Registered)),
		fmt.Sprintf("%d", stats.Updated),
		Gold(fmt.Sprintf("%d", stats.Pruned)),
	}
	if err := table.Append(row); err != nil {
		return "", fmt.Errorf("error formatting scan stats: %v", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("error rendering scan stats: %v", err)
	}
	return buf.String(), nil
}
