package steps

import "testing"

func defs(ids ...string) []Definition {
	out := make([]Definition, len(ids))
	for i, id := range ids {
		out[i] = Definition{ID: id, Label: id}
	}
	return out
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		i     int
		total int
		want  int
	}{
		{"in range", 2, 5, 2},
		{"negative", -3, 5, 0},
		{"past end", 99, 5, 4},
		{"last", 4, 5, 4},
		{"empty sequence", 3, 0, 0},
		{"negative empty", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.i, tt.total); got != tt.want {
				t.Errorf("Clamp(%d, %d) = %d, want %d", tt.i, tt.total, got, tt.want)
			}
		})
	}
}

func TestSequenceCursor(t *testing.T) {
	s := New(defs("outline", "vertices", "sides", "measurements")...)

	if s.Total() != 4 {
		t.Fatalf("Total = %d, want 4", s.Total())
	}
	if s.Current() != 0 {
		t.Fatalf("initial Current = %d, want 0", s.Current())
	}

	// Prev at the first step is a no-op.
	if got := s.Prev(); got != 0 {
		t.Errorf("Prev at 0 = %d, want 0", got)
	}

	s.Next()
	s.Next()
	if s.Current() != 2 {
		t.Errorf("Current after two Next = %d, want 2", s.Current())
	}

	// Next at the last step is a no-op.
	s.Seek(3)
	if got := s.Next(); got != 3 {
		t.Errorf("Next at last = %d, want 3", got)
	}

	if got := s.Seek(-10); got != 0 {
		t.Errorf("Seek(-10) = %d, want 0", got)
	}
	if got := s.Seek(100); got != 3 {
		t.Errorf("Seek(100) = %d, want 3", got)
	}
}

func TestSequenceVisibility(t *testing.T) {
	s := New(defs("outline", "vertices", "sides")...)
	s.Seek(1)

	for _, tt := range []struct {
		id      string
		visible bool
		current bool
	}{
		{"outline", true, false},
		{"vertices", true, true},
		{"sides", false, false},
		{"missing", false, false},
	} {
		if got := s.Visible(tt.id); got != tt.visible {
			t.Errorf("Visible(%q) = %v, want %v", tt.id, got, tt.visible)
		}
		if got := s.IsCurrent(tt.id); got != tt.current {
			t.Errorf("IsCurrent(%q) = %v, want %v", tt.id, got, tt.current)
		}
	}
}

func TestSequenceReplay(t *testing.T) {
	s := New(defs("a", "b", "c")...)
	s.Seek(2)

	// Walking back re-hides later steps; walking forward reveals them again.
	s.Prev()
	if s.Visible("c") {
		t.Error("step c still visible after Prev")
	}
	s.Next()
	if !s.Visible("c") {
		t.Error("step c not visible after Next")
	}
}

func TestEmptySequence(t *testing.T) {
	s := New()
	if s.Total() != 0 {
		t.Fatalf("Total = %d, want 0", s.Total())
	}
	if got := s.Seek(5); got != 0 {
		t.Errorf("Seek on empty = %d, want 0", got)
	}
	if s.Visible("anything") {
		t.Error("empty sequence reports a visible step")
	}
}
