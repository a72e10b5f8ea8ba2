package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"palette/internal/adapters/render"
	"palette/internal/application/commands"
	"palette/internal/domain"
	"palette/internal/ports"
)

// Workspace is what the tools operate on. The mutex serialises load/save
// cycles because the MCP server dispatches calls concurrently.
type Workspace struct {
	Store ports.CollectionStore
	Host  *domain.Host
	Index ports.ResourceIndex // optional, enables the scan tool

	mu sync.Mutex
}

// RegisterReadTools adds all read-only palette tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ws *Workspace) {
	s.AddTool(listTool(), listHandler(ws))
	s.AddTool(treeTool(), treeHandler(ws))
	s.AddTool(searchTool(), searchHandler(ws))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List palette entries with their folder, index, kind and validity. Without arguments lists every folder."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID to list. Omit to list the whole collection."),
		),
	)
}

func listHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewListCommand(ws.Store, ws.Host, req.GetString("folder_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(result.Entries, formatEntry)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Show the folder hierarchy of the palette as a tree."),
		mcp.WithString("entries",
			mcp.Description("Set to \"true\" to list entries under their folders."),
		),
	)
}

func treeHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		c, err := ws.Store.Load()
		if err != nil {
			return toolError(err)
		}

		out, err := render.RenderTree(c, ws.Host, render.TreeOptions{
			Entries: req.GetString("entries", "") == "true",
			IDs:     true,
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search folder and entry names. Returns the best matches first."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text, at least two characters."),
		),
	)
}

func searchHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		ws.mu.Lock()
		defer ws.mu.Unlock()

		results, err := commands.NewSearchCommand(ws.Store, ws.Host, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(results, formatSearchResult)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries[T any](items []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(format(item))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e commands.EntryInfo) string {
	line := fmt.Sprintf("%s  #%d  [%s]  %s  (%s)", e.FolderID, e.Index, e.Kind, e.Name, e.FolderPath)
	if !e.Valid {
		line += "  invalid"
	}
	return line
}

func formatSearchResult(r commands.SearchResult) string {
	if r.IsFolder {
		return fmt.Sprintf("%s  folder  %s", r.FolderID, r.FolderPath)
	}
	return formatEntry(r.EntryInfo)
}
