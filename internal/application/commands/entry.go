package commands

import (
	"context"
	"fmt"
	"math"
	"strings"

	"palette/internal/application"
	"palette/internal/domain"
	"palette/internal/ports"
)

// AddEntryResult contains the result of adding an entry
type AddEntryResult struct {
	Folder  *domain.Folder
	Entry   *domain.Entry
	Name    string
	Message string
}

// AddAssetCommand adds an asset shortcut for one project file
type AddAssetCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string // "" for the first root folder
	Path     string
}

// NewAddAssetCommand creates a new AddAssetCommand
func NewAddAssetCommand(store ports.CollectionStore, host *domain.Host, folderID, path string) *AddAssetCommand {
	return &AddAssetCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
		Path:     path,
	}
}

// Validate checks if the add operation is valid
func (c *AddAssetCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the add asset command
func (c *AddAssetCommand) Execute(ctx context.Context) (*AddEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := requireResolver(c.host); err != nil {
		return nil, err
	}

	e, err := domain.NewAssetEntry(c.host.Resolver, domain.NewResource(strings.TrimSpace(c.Path)))
	if err != nil {
		return nil, fmt.Errorf("failed to reference %s: %w", c.Path, err)
	}
	return addEntry(c.store, c.host, c.FolderID, e)
}

// AddMacroCommand adds a macro entry bound to a static method of a script class
type AddMacroCommand struct {
	store      ports.CollectionStore
	host       *domain.Host
	FolderID   string
	ScriptPath string
	Method     string
}

// NewAddMacroCommand creates a new AddMacroCommand
func NewAddMacroCommand(store ports.CollectionStore, host *domain.Host, folderID, scriptPath, method string) *AddMacroCommand {
	return &AddMacroCommand{
		store:      store,
		host:       host,
		FolderID:   folderID,
		ScriptPath: scriptPath,
		Method:     method,
	}
}

// Validate checks if the add operation is valid
func (c *AddMacroCommand) Validate() error {
	if err := application.ValidateRequired("scriptPath", c.ScriptPath); err != nil {
		return err
	}
	return application.ValidateRequired("method", c.Method)
}

// Execute runs the add macro command. Methods the runner cannot invoke are
// refused up front, since such an entry would be dropped on the next purge.
func (c *AddMacroCommand) Execute(ctx context.Context) (*AddEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := requireResolver(c.host); err != nil {
		return nil, err
	}

	script := domain.NewResource(strings.TrimSpace(c.ScriptPath))
	method := strings.TrimSpace(c.Method)
	if c.host.Macros != nil {
		if err := c.host.Macros.Check(script, method); err != nil {
			return nil, fmt.Errorf("cannot add macro %s.%s: %w", script.Name, method, err)
		}
	}

	e, err := domain.NewMacroEntry(c.host.Resolver, script, method)
	if err != nil {
		return nil, fmt.Errorf("failed to reference %s: %w", c.ScriptPath, err)
	}
	return addEntry(c.store, c.host, c.FolderID, e)
}

// AddShortcutCommand saves a multi-selection as one entry
type AddShortcutCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string
	Paths    []string
}

// NewAddShortcutCommand creates a new AddShortcutCommand
func NewAddShortcutCommand(store ports.CollectionStore, host *domain.Host, folderID string, paths []string) *AddShortcutCommand {
	return &AddShortcutCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
		Paths:    paths,
	}
}

// Validate checks if the add operation is valid
func (c *AddShortcutCommand) Validate() error {
	if len(c.Paths) == 0 {
		return &application.ValidationError{
			Field:   "paths",
			Message: "at least one path is required",
		}
	}
	for _, p := range c.Paths {
		if err := application.ValidateRequired("path", p); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the add shortcut command
func (c *AddShortcutCommand) Execute(ctx context.Context) (*AddEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := requireResolver(c.host); err != nil {
		return nil, err
	}

	members := make([]*domain.Resource, 0, len(c.Paths))
	for _, p := range c.Paths {
		members = append(members, domain.NewResource(strings.TrimSpace(p)))
	}
	e, err := domain.NewShortcutEntry(c.host.Resolver, members)
	if err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}
	return addEntry(c.store, c.host, c.FolderID, e)
}

func addEntry(store ports.CollectionStore, h *domain.Host, folderID string, e *domain.Entry) (*AddEntryResult, error) {
	col, err := load(store)
	if err != nil {
		return nil, err
	}
	f, err := col.AddEntry(h, folderID, e)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", e.Kind, err)
	}
	if err := save(store, col); err != nil {
		return nil, err
	}

	name := e.Name(h)
	return &AddEntryResult{
		Folder:  f,
		Entry:   e,
		Name:    name,
		Message: fmt.Sprintf("Added %s %s to %s", e.Kind, name, f.Name),
	}, nil
}

// EntryResult describes an entry touched by a command
type EntryResult struct {
	FolderID string
	Entry    *domain.Entry
	Name     string
	Message  string
}

// RenameEntryCommand sets or clears the custom name of an entry
type RenameEntryCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string
	Index    int
	Name     string // "" restores the default name
}

// NewRenameEntryCommand creates a new RenameEntryCommand
func NewRenameEntryCommand(store ports.CollectionStore, host *domain.Host, folderID string, index int, name string) *RenameEntryCommand {
	return &RenameEntryCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
		Index:    index,
		Name:     name,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameEntryCommand) Validate() error {
	if err := application.ValidateIndex("entryIndex", c.Index); err != nil {
		return err
	}
	if strings.ContainsAny(c.Name, "\r\n") {
		return &application.ValidationError{
			Field:   "name",
			Message: "name must be a single line",
		}
	}
	return nil
}

// Execute runs the rename entry command
func (c *RenameEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	var session application.RenameSession
	f, e, err := col.EntryAt(c.FolderID, c.Index)
	if err != nil {
		return nil, err
	}
	session.Start(f.ID, e)
	if _, err := session.Commit(col, c.host, c.Name); err != nil {
		return nil, fmt.Errorf("failed to rename entry: %w", err)
	}
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	name := e.Name(c.host)
	msg := fmt.Sprintf("Renamed entry to %s", name)
	if e.CustomName == "" {
		msg = fmt.Sprintf("Restored default name %s", name)
	}
	return &EntryResult{
		FolderID: f.ID,
		Entry:    e,
		Name:     name,
		Message:  msg,
	}, nil
}

// RemoveEntryCommand deletes one entry from a folder
type RemoveEntryCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string
	Index    int
}

// NewRemoveEntryCommand creates a new RemoveEntryCommand
func NewRemoveEntryCommand(store ports.CollectionStore, host *domain.Host, folderID string, index int) *RemoveEntryCommand {
	return &RemoveEntryCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
		Index:    index,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveEntryCommand) Validate() error {
	return application.ValidateIndex("entryIndex", c.Index)
}

// Execute runs the remove entry command
func (c *RemoveEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}
	f, err := col.FolderFor(c.FolderID)
	if err != nil {
		return nil, err
	}
	e, err := col.RemoveEntry(f.ID, c.Index)
	if err != nil {
		return nil, err
	}
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	name := e.Name(c.host)
	return &EntryResult{
		FolderID: f.ID,
		Entry:    e,
		Name:     name,
		Message:  fmt.Sprintf("Removed %s from %s", name, f.Name),
	}, nil
}

// MoveEntryCommand moves an entry into another folder (or within one)
type MoveEntryCommand struct {
	store       ports.CollectionStore
	host        *domain.Host
	FolderID    string
	Index       int
	TargetID    string
	TargetIndex int // negative appends
}

// NewMoveEntryCommand creates a new MoveEntryCommand
func NewMoveEntryCommand(store ports.CollectionStore, host *domain.Host, folderID string, index int, targetID string, targetIndex int) *MoveEntryCommand {
	return &MoveEntryCommand{
		store:       store,
		host:        host,
		FolderID:    folderID,
		Index:       index,
		TargetID:    targetID,
		TargetIndex: targetIndex,
	}
}

// Validate checks if the move operation is valid
func (c *MoveEntryCommand) Validate() error {
	if err := application.ValidateIndex("entryIndex", c.Index); err != nil {
		return err
	}
	return application.ValidateRequired("targetParentID", c.TargetID)
}

// Execute runs the move entry command
func (c *MoveEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}
	_, e, err := col.EntryAt(c.FolderID, c.Index)
	if err != nil {
		return nil, err
	}

	target := c.TargetIndex
	if target < 0 {
		target = math.MaxInt
	}
	if err := col.MoveEntry(c.host, c.FolderID, c.Index, c.TargetID, target); err != nil {
		return nil, &application.MoveError{
			SourceID: fmt.Sprintf("%s[%d]", c.FolderID, c.Index),
			DestID:   c.TargetID,
			Reason:   err.Error(),
		}
	}
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	dst, _ := col.Find(c.TargetID)
	name := e.Name(c.host)
	return &EntryResult{
		FolderID: dst.ID,
		Entry:    e,
		Name:     name,
		Message:  fmt.Sprintf("Moved %s to %s", name, dst.Name),
	}, nil
}
