package editor

import (
	"path/filepath"
	"testing"

	"palette/internal/domain"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		env      string
		wantArgs []string
	}{
		{
			name:     "configured editor with flags",
			editor:   "code --wait",
			env:      "vim",
			wantArgs: []string{"code", "--wait", filepath.Join("/proj", "Assets", "Hero.prefab")},
		},
		{
			name:     "falls back to EDITOR",
			env:      "nano",
			wantArgs: []string{"nano", filepath.Join("/proj", "Assets", "Hero.prefab")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			o := NewOpener("/proj", tt.editor)

			cmd, err := o.Command(domain.NewResource("Assets/Hero.prefab"))
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestOpener_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("PATH", t.TempDir())

	if _, err := NewOpener("/proj", "").Command(domain.NewResource("a.txt")); err == nil {
		t.Error("expected error when no editor is available")
	}
}

func TestOpener_NilResource(t *testing.T) {
	if _, err := NewOpener("/proj", "vim").Command(nil); err == nil {
		t.Error("expected error for nil resource")
	}
}
