package domain

import "testing"

func TestNewReference_CachesResolution(t *testing.T) {
	r := newFakeResolver("Assets/Hero.prefab")
	res := r.res("Assets/Hero.prefab")

	ref, err := NewReference(r, res)
	if err != nil {
		t.Fatalf("NewReference failed: %v", err)
	}

	again, _ := NewReference(r, res)
	if ref.ID() != again.ID() {
		t.Errorf("identifier not stable: %q vs %q", ref.ID(), again.ID())
	}

	got, ok := ref.Resolve(r)
	if !ok || got != res {
		t.Fatalf("Resolve() = %v, %v; want the constructing resource", got, ok)
	}
	if r.lookups != 0 {
		t.Errorf("expected no lookup after construction, got %d", r.lookups)
	}
}

func TestReference_MemoizesMissingResource(t *testing.T) {
	r := newFakeResolver()
	ref := ReferenceFromID("id:gone.png")

	if _, ok := ref.Resolve(r); ok {
		t.Fatal("expected unresolved reference")
	}
	ref.Resolve(r)
	if r.lookups != 1 {
		t.Errorf("expected exactly one lookup, got %d", r.lookups)
	}

	// The resource appears later; only Invalidate makes it visible
	r.byID["id:gone.png"] = NewResource("gone.png")
	if _, ok := ref.Resolve(r); ok {
		t.Error("memoized miss should survive until Invalidate")
	}
	ref.Invalidate()
	if _, ok := ref.Resolve(r); !ok {
		t.Error("expected resolution after Invalidate")
	}
	if ref.ID() != "id:gone.png" {
		t.Errorf("identifier changed to %q", ref.ID())
	}
}

func TestReference_NilResolver(t *testing.T) {
	ref := ReferenceFromID("id:x")
	if _, ok := ref.Resolve(nil); ok {
		t.Error("expected no resolution without a resolver")
	}
	if _, err := NewReference(nil, NewResource("x")); err == nil {
		t.Error("expected error constructing without a resolver")
	}
}

func TestReferenceList_Mutations(t *testing.T) {
	r := newFakeResolver("a.txt", "b.txt", "c.txt", "d.txt")
	var l ReferenceList

	for _, p := range []string{"a.txt", "c.txt"} {
		if err := l.Add(r, r.res(p)); err != nil {
			t.Fatalf("Add(%s): %v", p, err)
		}
	}
	if got := len(l.Resolved(r)); got != 2 {
		t.Fatalf("expected 2 resolved, got %d", got)
	}

	if err := l.Insert(1, r, r.res("b.txt")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	view := l.Resolved(r)
	if len(view) != 3 || view[1].Path != "b.txt" {
		t.Fatalf("view not rebuilt after Insert: %v", view)
	}

	if err := l.Set(2, r, r.res("d.txt")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := l.Resolved(r)[2].Path; got != "d.txt" {
		t.Errorf("expected d.txt at 2, got %s", got)
	}

	l.RemoveAt(0)
	ids := l.IDs()
	want := []string{"id:b.txt", "id:d.txt"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Errorf("IDs() = %v, want %v", ids, want)
	}
	if got := len(l.Resolved(r)); got != 2 {
		t.Errorf("expected view of 2 after RemoveAt, got %d", got)
	}

	l.Clear()
	if l.Len() != 0 || len(l.Resolved(r)) != 0 {
		t.Error("expected empty list after Clear")
	}
}

func TestReferenceList_UnresolvedSlots(t *testing.T) {
	r := newFakeResolver("a.txt", "b.txt")
	l := ReferenceListFromIDs([]string{"id:a.txt", "id:missing", "id:b.txt"})

	view := l.Resolved(r)
	if len(view) != 3 {
		t.Fatalf("expected one slot per identifier, got %d", len(view))
	}
	if view[1] != nil {
		t.Errorf("expected nil slot for missing member, got %v", view[1])
	}
	if got := len(l.Valid(r)); got != 2 {
		t.Errorf("expected 2 valid members, got %d", got)
	}
}

func TestReferenceList_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(l *ReferenceList, r Resolver)
	}{
		{"RemoveAt past end", func(l *ReferenceList, _ Resolver) { l.RemoveAt(1) }},
		{"RemoveAt negative", func(l *ReferenceList, _ Resolver) { l.RemoveAt(-1) }},
		{"Set past end", func(l *ReferenceList, r Resolver) { _ = l.Set(1, r, NewResource("x")) }},
		{"Insert beyond len", func(l *ReferenceList, r Resolver) { _ = l.Insert(2, r, NewResource("x")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeResolver("a.txt")
			l := ReferenceListFromIDs([]string{"id:a.txt"})
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(&l, r)
		})
	}
}
