package store

import (
	"fmt"

	"palette/internal/domain"
)

// formatVersion is written into every collection file
const formatVersion = 1

type collectionDTO struct {
	Version  int         `json:"version" yaml:"version"`
	SortMode string      `json:"sort_mode" yaml:"sort_mode"`
	Folders  []folderDTO `json:"folders" yaml:"folders"`
}

type folderDTO struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	Children []folderDTO `json:"children,omitempty" yaml:"children,omitempty"`
	Entries  []entryDTO  `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// entryDTO flattens the entry union; Kind selects which fields apply.
// References are stored as their identifiers only.
type entryDTO struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Ref     string   `json:"ref,omitempty" yaml:"ref,omitempty"`
	Script  string   `json:"script,omitempty" yaml:"script,omitempty"`
	Method  string   `json:"method,omitempty" yaml:"method,omitempty"`
	Icon    string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

func toDTO(c *domain.Collection) collectionDTO {
	dto := collectionDTO{
		Version:  formatVersion,
		SortMode: c.SortMode.String(),
		Folders:  make([]folderDTO, 0, len(c.Folders)),
	}
	for _, f := range c.Folders {
		dto.Folders = append(dto.Folders, folderToDTO(f))
	}
	return dto
}

func folderToDTO(f *domain.Folder) folderDTO {
	dto := folderDTO{ID: f.ID, Name: f.Name}
	for _, child := range f.Children {
		dto.Children = append(dto.Children, folderToDTO(child))
	}
	for _, e := range f.Entries {
		dto.Entries = append(dto.Entries, entryToDTO(e))
	}
	return dto
}

func entryToDTO(e *domain.Entry) entryDTO {
	dto := entryDTO{Kind: e.Kind.String(), Name: e.CustomName}
	switch e.Kind {
	case domain.EntryAsset:
		dto.Ref = e.Asset.Ref.ID()
	case domain.EntryMacro:
		dto.Script = e.Macro.Script.ID()
		dto.Method = e.Macro.Method
		dto.Icon = e.Macro.Icon.ID()
	case domain.EntryShortcut:
		dto.Members = e.Shortcut.Members.IDs()
	}
	return dto
}

func fromDTO(dto collectionDTO) (*domain.Collection, error) {
	if dto.Version > formatVersion {
		return nil, fmt.Errorf("collection format %d is newer than supported (%d)", dto.Version, formatVersion)
	}

	c := &domain.Collection{}
	if dto.SortMode != "" {
		mode, err := domain.ParseSortMode(dto.SortMode)
		if err != nil {
			return nil, err
		}
		c.SortMode = mode
	}
	for _, fd := range dto.Folders {
		f, err := folderFromDTO(fd)
		if err != nil {
			return nil, err
		}
		c.Folders = append(c.Folders, f)
	}
	return c, nil
}

func folderFromDTO(dto folderDTO) (*domain.Folder, error) {
	f := domain.NewFolder(dto.Name, dto.ID)
	for _, cd := range dto.Children {
		child, err := folderFromDTO(cd)
		if err != nil {
			return nil, err
		}
		f.Children = append(f.Children, child)
	}
	for i, ed := range dto.Entries {
		e, err := entryFromDTO(ed)
		if err != nil {
			return nil, fmt.Errorf("folder %q entry %d: %w", dto.Name, i, err)
		}
		f.Entries = append(f.Entries, e)
	}
	return f, nil
}

func entryFromDTO(dto entryDTO) (*domain.Entry, error) {
	kind, err := domain.ParseEntryKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	e := &domain.Entry{Kind: kind, CustomName: dto.Name}
	switch kind {
	case domain.EntryAsset:
		e.Asset = &domain.AssetEntry{Ref: domain.ReferenceFromID(dto.Ref)}
	case domain.EntryMacro:
		e.Macro = &domain.MacroEntry{
			Script: domain.ReferenceFromID(dto.Script),
			Method: dto.Method,
			Icon:   domain.ReferenceFromID(dto.Icon),
		}
	case domain.EntryShortcut:
		e.Shortcut = &domain.ShortcutEntry{Members: domain.ReferenceListFromIDs(dto.Members)}
	}
	return e, nil
}
