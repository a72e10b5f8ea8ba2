package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"palette/internal/application"
	"palette/internal/domain"
	"palette/internal/ports"
)

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	Folder  *domain.Folder
	Message string
}

// CreateFolderCommand creates a folder at the root or under a parent
type CreateFolderCommand struct {
	store    ports.CollectionStore
	ParentID string // "" for a root folder
	Name     string // "" for the default new folder name
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(store ports.CollectionStore, parentID, name string) *CreateFolderCommand {
	return &CreateFolderCommand{
		store:    store,
		ParentID: parentID,
		Name:     name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateFolderCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return nil
	}
	return application.ValidateFolderName("name", c.Name)
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	f, err := col.AddFolder(c.ParentID, strings.TrimSpace(c.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	return &CreateFolderResult{
		Folder:  f,
		Message: fmt.Sprintf("Created folder %s (%s)", f.Name, f.ID),
	}, nil
}

// RenameFolderResult contains the result of renaming a folder
type RenameFolderResult struct {
	FolderID string
	NewName  string
	Message  string
}

// RenameFolderCommand renames a folder, numbering the name if a sibling has it
type RenameFolderCommand struct {
	store    ports.CollectionStore
	FolderID string
	Name     string
}

// NewRenameFolderCommand creates a new RenameFolderCommand
func NewRenameFolderCommand(store ports.CollectionStore, folderID, name string) *RenameFolderCommand {
	return &RenameFolderCommand{
		store:    store,
		FolderID: folderID,
		Name:     name,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameFolderCommand) Validate() error {
	if err := application.ValidateRequired("folderID", c.FolderID); err != nil {
		return err
	}
	return application.ValidateFolderName("name", c.Name)
}

// Execute runs the rename folder command
func (c *RenameFolderCommand) Execute(ctx context.Context) (*RenameFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	wanted := strings.TrimSpace(c.Name)
	name, err := col.RenameFolder(c.FolderID, wanted)
	if err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Renamed folder to %s", name)
	if name != wanted {
		msg = fmt.Sprintf("Renamed folder to %s (%s was taken)", name, wanted)
	}
	return &RenameFolderResult{
		FolderID: c.FolderID,
		NewName:  name,
		Message:  msg,
	}, nil
}

// MoveFolderResult contains the result of moving a folder
type MoveFolderResult struct {
	Folder  *domain.Folder
	Message string
}

// MoveFolderCommand re-attaches a folder subtree under another parent
type MoveFolderCommand struct {
	store          ports.CollectionStore
	FolderID       string
	TargetParentID string // "" moves the folder to the root
	Index          int    // negative appends
}

// NewMoveFolderCommand creates a new MoveFolderCommand
func NewMoveFolderCommand(store ports.CollectionStore, folderID, targetParentID string, index int) *MoveFolderCommand {
	return &MoveFolderCommand{
		store:          store,
		FolderID:       folderID,
		TargetParentID: targetParentID,
		Index:          index,
	}
}

// Validate checks if the move operation is valid
func (c *MoveFolderCommand) Validate() error {
	if err := application.ValidateRequired("folderID", c.FolderID); err != nil {
		return err
	}
	if c.FolderID == c.TargetParentID {
		return &application.MoveError{
			SourceID: c.FolderID,
			DestID:   c.TargetParentID,
			Reason:   "a folder cannot contain itself",
		}
	}
	return nil
}

// Execute runs the move folder command
func (c *MoveFolderCommand) Execute(ctx context.Context) (*MoveFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	index := c.Index
	if index < 0 {
		index = math.MaxInt
	}

	if err := col.MoveFolder(c.FolderID, c.TargetParentID, index); err != nil {
		if errors.Is(err, domain.ErrCyclicMove) {
			return nil, &application.MoveError{
				SourceID: c.FolderID,
				DestID:   c.TargetParentID,
				Reason:   "target is inside the moved folder",
			}
		}
		return nil, fmt.Errorf("failed to move folder: %w", err)
	}
	if err := save(c.store, col); err != nil {
		return nil, err
	}

	f, _ := col.Find(c.FolderID)
	dest := "root"
	if parent, ok := col.Find(c.TargetParentID); ok {
		dest = parent.Name
	}
	return &MoveFolderResult{
		Folder:  f,
		Message: fmt.Sprintf("Moved %s to %s", f.Name, dest),
	}, nil
}

// DeleteFolderResult contains the result of deleting a folder
type DeleteFolderResult struct {
	Deleted  bool
	Selected string // folder the host should select afterwards
	Message  string
}

// DeleteFolderCommand removes a folder with its subtree and entries
type DeleteFolderCommand struct {
	store    ports.CollectionStore
	FolderID string
	Selected string // folder currently selected by the host, may be ""
}

// NewDeleteFolderCommand creates a new DeleteFolderCommand
func NewDeleteFolderCommand(store ports.CollectionStore, folderID, selected string) *DeleteFolderCommand {
	return &DeleteFolderCommand{
		store:    store,
		FolderID: folderID,
		Selected: selected,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteFolderCommand) Validate() error {
	return application.ValidateRequired("folderID", c.FolderID)
}

// Execute runs the delete folder command. Deleting the last root folder is
// refused without an error; the result reports Deleted == false.
func (c *DeleteFolderCommand) Execute(ctx context.Context) (*DeleteFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	col, err := load(c.store)
	if err != nil {
		return nil, err
	}

	f, ok := col.Find(c.FolderID)
	if !ok {
		return nil, fmt.Errorf("%w: folder %s", application.ErrNotFound, c.FolderID)
	}
	name := f.Name

	selected := col.DeleteFolder(c.FolderID, c.Selected)
	if _, still := col.Find(c.FolderID); still {
		return &DeleteFolderResult{
			Deleted:  false,
			Selected: selected,
			Message:  fmt.Sprintf("Kept %s: the last root folder cannot be deleted", name),
		}, nil
	}

	if err := save(c.store, col); err != nil {
		return nil, err
	}
	return &DeleteFolderResult{
		Deleted:  true,
		Selected: selected,
		Message:  fmt.Sprintf("Deleted folder %s", name),
	}, nil
}
