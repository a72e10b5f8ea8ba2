package commands

import (
	"context"
	"errors"
	"testing"

	"palette/internal/application"
	"palette/internal/domain"
)

func TestAddAssetCommand(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHost("Assets/Zebra.png", "Assets/Apple.png")
	store := newMemStore()
	store.col.SortMode = domain.SortAlphabetical

	for _, p := range []string{"Assets/Zebra.png", "Assets/Apple.png"} {
		if _, err := NewAddAssetCommand(store, h, "", p).Execute(ctx); err != nil {
			t.Fatalf("Execute(%s) failed: %v", p, err)
		}
	}
	got := entryNames(h, store.col.Folders[0])
	if len(got) != 2 || got[0] != "Apple" || got[1] != "Zebra" {
		t.Errorf("entries = %v, want sorted [Apple Zebra]", got)
	}

	if _, err := NewAddAssetCommand(store, h, "", "Assets/Missing.png").Execute(ctx); err == nil {
		t.Error("expected error for a file the index does not know")
	}
	if _, err := NewAddAssetCommand(store, &domain.Host{}, "", "Assets/Apple.png").Execute(ctx); err == nil {
		t.Error("expected error without a resolver")
	}
	if err := NewAddAssetCommand(store, h, "", " ").Validate(); err == nil {
		t.Error("expected validation error for blank path")
	}
}

func TestAddMacroCommand(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHost("Editor/Tools.cs")
	store := newMemStore()

	result, err := NewAddMacroCommand(store, h, "", "Editor/Tools.cs", "Build").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Entry.Kind != domain.EntryMacro || result.Name != "Build" {
		t.Errorf("unexpected entry %v %q", result.Entry.Kind, result.Name)
	}

	_, err = NewAddMacroCommand(store, h, "", "Editor/Tools.cs", "Draw").Execute(ctx)
	if !errors.Is(err, domain.ErrInstanceMethod) {
		t.Errorf("expected ErrInstanceMethod, got %v", err)
	}
	if n := len(store.col.Folders[0].Entries); n != 1 {
		t.Errorf("refused macro must not be stored, have %d entries", n)
	}
}

func TestAddShortcutCommand(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHost("a.png", "b.png")
	store := newMemStore()

	if err := NewAddShortcutCommand(store, h, "", nil).Validate(); err == nil {
		t.Error("expected validation error for an empty selection")
	}

	result, err := NewAddShortcutCommand(store, h, "", []string{"a.png", "b.png"}).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Name != "a, b" {
		t.Errorf("Name = %q, want \"a, b\"", result.Name)
	}
}

func TestRenameEntryCommand(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHost("Hero.prefab")
	store := newMemStore()
	if _, err := NewAddAssetCommand(store, h, "", "Hero.prefab").Execute(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, err := NewRenameEntryCommand(store, h, "", 0, "Player").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Name != "Player" {
		t.Errorf("Name = %q", result.Name)
	}

	result, err = NewRenameEntryCommand(store, h, "", 0, "").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Name != "Hero" || !contains(result.Message, "default") {
		t.Errorf("clearing should restore the default name, got %q (%s)", result.Name, result.Message)
	}

	if err := NewRenameEntryCommand(store, h, "", -1, "x").Validate(); err == nil {
		t.Error("expected validation error for negative index")
	}
	if _, err := NewRenameEntryCommand(store, h, "", 5, "x").Execute(ctx); !application.IsNotFound(err) {
		t.Errorf("expected not found for out of range index, got %v", err)
	}
}

func TestRemoveAndMoveEntryCommands(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHost("a.png", "b.png")
	store := newMemStore()
	for _, p := range []string{"a.png", "b.png"} {
		if _, err := NewAddAssetCommand(store, h, "", p).Execute(ctx); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	src := store.col.Folders[0]
	dst, _ := NewCreateFolderCommand(store, "", "Other").Execute(ctx)

	moved, err := NewMoveEntryCommand(store, h, src.ID, 0, dst.Folder.ID, -1).Execute(ctx)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if moved.Name != "a" || len(dst.Folder.Entries) != 1 || len(src.Entries) != 1 {
		t.Errorf("unexpected state after move: %v / %v", entryNames(h, src), entryNames(h, dst.Folder))
	}

	removed, err := NewRemoveEntryCommand(store, h, src.ID, 0).Execute(ctx)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed.Name != "b" || len(src.Entries) != 0 {
		t.Errorf("unexpected remove result %q, %d left", removed.Name, len(src.Entries))
	}
}
