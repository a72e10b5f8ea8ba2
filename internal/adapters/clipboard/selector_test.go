package clipboard

import (
	"errors"
	"testing"

	"palette/internal/domain"
)

func TestSelector_Select(t *testing.T) {
	var written string
	s := &Selector{write: func(text string) error {
		written = text
		return nil
	}}

	err := s.Select([]*domain.Resource{domain.NewResource("a.png"), nil, domain.NewResource("Scenes/Main.unity")})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if written != "a.png\nScenes/Main.unity" {
		t.Errorf("clipboard = %q", written)
	}
	if len(s.Last()) != 2 {
		t.Errorf("Last() = %v", s.Last())
	}
}

func TestSelector_Errors(t *testing.T) {
	s := &Selector{write: func(string) error { return errors.New("no display") }}

	if err := s.Select(nil); err == nil {
		t.Error("expected error for empty selection")
	}
	if err := s.Select([]*domain.Resource{domain.NewResource("a.png")}); err == nil {
		t.Error("expected clipboard failure to surface")
	}
	if s.Last() != nil {
		t.Error("failed selection must not be remembered")
	}
}
