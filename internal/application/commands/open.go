package commands

import (
	"context"
	"fmt"

	"palette/internal/application"
	"palette/internal/domain"
	"palette/internal/ports"
)

// OpenEntryResult contains the result of activating an entry
type OpenEntryResult struct {
	Entry   *domain.Entry
	Name    string
	Valid   bool
	Message string
}

// OpenEntryCommand performs an entry's open action: open the asset, run the
// macro, or re-select the saved selection. Failures reach the host logger and
// are not returned as errors.
type OpenEntryCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string
	Index    int
}

// NewOpenEntryCommand creates a new OpenEntryCommand
func NewOpenEntryCommand(store ports.CollectionStore, host *domain.Host, folderID string, index int) *OpenEntryCommand {
	return &OpenEntryCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
		Index:    index,
	}
}

// Validate checks if the open operation is valid
func (c *OpenEntryCommand) Validate() error {
	return application.ValidateIndex("entryIndex", c.Index)
}

// Execute runs the open entry command
func (c *OpenEntryCommand) Execute(ctx context.Context) (*OpenEntryResult, error) {
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

	name := e.Name(c.host)
	valid := e.IsValid(c.host)
	e.Open(c.host)

	msg := fmt.Sprintf("Opened %s", name)
	if !valid {
		msg = fmt.Sprintf("%s is no longer valid", name)
	}
	return &OpenEntryResult{
		Entry:   e,
		Name:    name,
		Valid:   valid,
		Message: msg,
	}, nil
}

// SelectEntryResult lists the resources an entry selects
type SelectEntryResult struct {
	Resources []*domain.Resource
	Message   string
}

// SelectEntryCommand hands the entry's resources to the host selector
type SelectEntryCommand struct {
	store    ports.CollectionStore
	host     *domain.Host
	FolderID string
	Index    int
}

// NewSelectEntryCommand creates a new SelectEntryCommand
func NewSelectEntryCommand(store ports.CollectionStore, host *domain.Host, folderID string, index int) *SelectEntryCommand {
	return &SelectEntryCommand{
		store:    store,
		host:     host,
		FolderID: folderID,
		Index:    index,
	}
}

// Validate checks if the select operation is valid
func (c *SelectEntryCommand) Validate() error {
	return application.ValidateIndex("entryIndex", c.Index)
}

// Execute runs the select entry command
func (c *SelectEntryCommand) Execute(ctx context.Context) (*SelectEntryResult, error) {
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

	resources := e.AssetsToSelect(c.host)
	if len(resources) == 0 {
		return nil, fmt.Errorf("%w: nothing to select for %s", application.ErrInvalidOperation, e.Name(c.host))
	}
	if c.host != nil && c.host.Selector != nil {
		if err := c.host.Selector.Select(resources); err != nil {
			return nil, fmt.Errorf("failed to select: %w", err)
		}
	}

	return &SelectEntryResult{
		Resources: resources,
		Message:   fmt.Sprintf("Selected %d resource(s)", len(resources)),
	}, nil
}
