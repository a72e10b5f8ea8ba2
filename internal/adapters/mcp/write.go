package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"palette/internal/adapters/render"
	"palette/internal/application/commands"
)

// RegisterWriteTools adds all mutating palette tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, ws *Workspace) {
	s.AddTool(folderCreateTool(), folderCreateHandler(ws))
	s.AddTool(folderRenameTool(), folderRenameHandler(ws))
	s.AddTool(folderMoveTool(), folderMoveHandler(ws))
	s.AddTool(folderDeleteTool(), folderDeleteHandler(ws))
	s.AddTool(entryAddTool(), entryAddHandler(ws))
	s.AddTool(entryRenameTool(), entryRenameHandler(ws))
	s.AddTool(entryRemoveTool(), entryRemoveHandler(ws))
	s.AddTool(entryMoveTool(), entryMoveHandler(ws))
	s.AddTool(entryOpenTool(), entryOpenHandler(ws))
	s.AddTool(sortTool(), sortHandler(ws))
	s.AddTool(purgeTool(), purgeHandler(ws))
	if ws.Index != nil {
		s.AddTool(scanTool(), scanHandler(ws))
		s.AddTool(relocateTool(), relocateHandler(ws))
	}
}

// --- folder_create ---

func folderCreateTool() mcp.Tool {
	return mcp.NewTool("folder_create",
		mcp.WithDescription("Create a folder. Clashing names get a numeric suffix."),
		mcp.WithString("parent_id",
			mcp.Description("Parent folder ID. Omit to create a root folder."),
		),
		mcp.WithString("name",
			mcp.Description("Folder name. Omit for \"New Folder\"."),
		),
	)
}

func folderCreateHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewCreateFolderCommand(ws.Store, req.GetString("parent_id", ""), req.GetString("name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- folder_rename ---

func folderRenameTool() mcp.Tool {
	return mcp.NewTool("folder_rename",
		mcp.WithDescription("Rename a folder. Clashing names get a numeric suffix."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID to rename."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New folder name."),
		),
	)
}

func folderRenameHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewRenameFolderCommand(ws.Store, req.GetString("folder_id", ""), req.GetString("name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- folder_move ---

func folderMoveTool() mcp.Tool {
	return mcp.NewTool("folder_move",
		mcp.WithDescription("Move a folder under another folder or to the root. A folder cannot move into its own subtree."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID to move."),
		),
		mcp.WithString("parent_id",
			mcp.Description("Destination folder ID. Omit to move to the root."),
		),
		mcp.WithNumber("index",
			mcp.Description("Position among the destination's children. Omit to append."),
		),
	)
}

func folderMoveHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewMoveFolderCommand(ws.Store,
			req.GetString("folder_id", ""),
			req.GetString("parent_id", ""),
			req.GetInt("index", -1),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- folder_delete ---

func folderDeleteTool() mcp.Tool {
	return mcp.NewTool("folder_delete",
		mcp.WithDescription("Delete a folder with its subfolders and entries. The last root folder cannot be deleted."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID to delete."),
		),
	)
}

func folderDeleteHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewDeleteFolderCommand(ws.Store, req.GetString("folder_id", ""), "")
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if !result.Deleted {
			return mcp.NewToolResultError(result.Message), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- entry_add ---

func entryAddTool() mcp.Tool {
	return mcp.NewTool("entry_add",
		mcp.WithDescription("Add an entry to a folder: an asset, a macro (script plus static method) or a shortcut over several files."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Enum("asset", "macro", "shortcut"),
			mcp.Description("Entry kind."),
		),
		mcp.WithString("folder_id",
			mcp.Description("Target folder ID. Omit for the first root folder."),
		),
		mcp.WithString("path",
			mcp.Description("Project-relative file path for an asset, or the script path for a macro."),
		),
		mcp.WithString("method",
			mcp.Description("Static method name for a macro."),
		),
		mcp.WithArray("paths",
			mcp.WithStringItems(),
			mcp.Description("Project-relative file paths for a shortcut."),
		),
	)
}

func entryAddHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		folderID := req.GetString("folder_id", "")
		var (
			result *commands.AddEntryResult
			err    error
		)
		switch kind := req.GetString("kind", ""); kind {
		case "asset":
			result, err = commands.NewAddAssetCommand(ws.Store, ws.Host, folderID, req.GetString("path", "")).Execute(ctx)
		case "macro":
			result, err = commands.NewAddMacroCommand(ws.Store, ws.Host, folderID,
				req.GetString("path", ""), req.GetString("method", "")).Execute(ctx)
		case "shortcut":
			result, err = commands.NewAddShortcutCommand(ws.Store, ws.Host, folderID,
				req.GetStringSlice("paths", nil)).Execute(ctx)
		default:
			return mcp.NewToolResultError("kind must be asset, macro or shortcut, got " + kind), nil
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- entry_rename ---

func entryRenameTool() mcp.Tool {
	return mcp.NewTool("entry_rename",
		mcp.WithDescription("Give an entry a custom name. An empty name restores the default name."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID holding the entry."),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Entry index within the folder, as shown by list."),
		),
		mcp.WithString("name",
			mcp.Description("New name."),
		),
	)
}

func entryRenameHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewRenameEntryCommand(ws.Store, ws.Host,
			req.GetString("folder_id", ""),
			req.GetInt("index", -1),
			req.GetString("name", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- entry_remove ---

func entryRemoveTool() mcp.Tool {
	return mcp.NewTool("entry_remove",
		mcp.WithDescription("Remove an entry from a folder."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID holding the entry."),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Entry index within the folder."),
		),
	)
}

func entryRemoveHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewRemoveEntryCommand(ws.Store, ws.Host, req.GetString("folder_id", ""), req.GetInt("index", -1))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- entry_move ---

func entryMoveTool() mcp.Tool {
	return mcp.NewTool("entry_move",
		mcp.WithDescription("Move an entry within its folder or to another folder."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID holding the entry."),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Entry index within the folder."),
		),
		mcp.WithString("target_id",
			mcp.Description("Destination folder ID. Omit to stay in the same folder."),
		),
		mcp.WithNumber("target_index",
			mcp.Description("Position in the destination. Omit to append."),
		),
	)
}

func entryMoveHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		folderID := req.GetString("folder_id", "")
		cmd := commands.NewMoveEntryCommand(ws.Store, ws.Host,
			folderID,
			req.GetInt("index", -1),
			req.GetString("target_id", folderID),
			req.GetInt("target_index", -1),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- entry_open ---

func entryOpenTool() mcp.Tool {
	return mcp.NewTool("entry_open",
		mcp.WithDescription("Perform an entry's action: open an asset in the editor, run a macro, or select a shortcut's files."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Folder ID holding the entry."),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Entry index within the folder."),
		),
	)
}

func entryOpenHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		cmd := commands.NewOpenEntryCommand(ws.Store, ws.Host, req.GetString("folder_id", ""), req.GetInt("index", -1))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if !result.Valid {
			return mcp.NewToolResultError(result.Message), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sort ---

func sortTool() mcp.Tool {
	return mcp.NewTool("sort",
		mcp.WithDescription("Set the collection sort mode. Omit the mode to cycle unsorted, alphabetical, reverse."),
		mcp.WithString("mode",
			mcp.Enum("unsorted", "alphabetical", "reverse"),
			mcp.Description("Sort mode."),
		),
	)
}

func sortHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		result, err := commands.NewSortCommand(ws.Store, ws.Host, req.GetString("mode", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- purge ---

func purgeTool() mcp.Tool {
	return mcp.NewTool("purge",
		mcp.WithDescription("Remove every entry whose files or macro can no longer be found."),
	)
}

func purgeHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		result, err := commands.NewPurgeCommand(ws.Store, ws.Host).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Rescan the project so new files get identifiers and deleted files are forgotten."),
	)
}

func scanHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		stats, err := commands.NewScanCommand(ws.Index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		out, err := render.RenderScanStats(stats)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- relocate ---

func relocateTool() mcp.Tool {
	return mcp.NewTool("relocate",
		mcp.WithDescription("Record that a project file was moved or renamed so entries pointing at it keep resolving. Paths are relative to the project root."),
		mcp.WithString("old_path",
			mcp.Required(),
			mcp.Description("Previous path of the file"),
		),
		mcp.WithString("new_path",
			mcp.Required(),
			mcp.Description("Current path of the file"),
		),
	)
}

func relocateHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ws.mu.Lock()
		defer ws.mu.Unlock()

		result, err := commands.NewRelocateCommand(ws.Index, req.GetString("old_path", ""), req.GetString("new_path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
