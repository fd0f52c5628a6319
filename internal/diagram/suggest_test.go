package diagram

import (
	"reflect"
	"testing"
)

func TestSuggestTypo(t *testing.T) {
	tests := []struct {
		name    string
		unknown string
		first   string
	}{
		{"dropped letter", "trangle", "triangle"},
		{"misspelling", "trapazoid", "trapezoid"},
		{"underscore variant", "right_triangel", "right_triangle"},
		{"circle typo", "cirlce", "circle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.unknown, KnownTypes(), maxSuggestions)
			if len(got) == 0 {
				t.Fatalf("Suggest(%q) returned nothing", tt.unknown)
			}
			if got[0] != tt.first {
				t.Errorf("Suggest(%q)[0] = %q, want %q", tt.unknown, got[0], tt.first)
			}
			if len(got) > maxSuggestions {
				t.Errorf("Suggest(%q) returned %d entries, cap is %d", tt.unknown, len(got), maxSuggestions)
			}
		})
	}
}

func TestSuggestDeterministic(t *testing.T) {
	first := Suggest("triangel", KnownTypes(), maxSuggestions)
	for i := 0; i < 10; i++ {
		again := Suggest("triangel", KnownTypes(), maxSuggestions)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: %v != %v", i, again, first)
		}
	}
}

func TestSuggestSharedPrefixNeverEmpty(t *testing.T) {
	// Any input sharing a prefix with a known type must yield suggestions.
	for _, known := range KnownTypes() {
		probe := known[:len(known)-1] + "x"
		if got := Suggest(probe, KnownTypes(), maxSuggestions); len(got) == 0 {
			t.Errorf("Suggest(%q) = empty, shares prefix with %q", probe, known)
		}
	}
}

func TestSuggestEdgeCases(t *testing.T) {
	if got := Suggest("", KnownTypes(), maxSuggestions); got != nil {
		t.Errorf("empty input suggested %v", got)
	}
	if got := Suggest("triangle", KnownTypes(), 0); got != nil {
		t.Errorf("max=0 suggested %v", got)
	}
	if got := Suggest("zzzz", KnownTypes(), maxSuggestions); len(got) != 0 {
		t.Errorf("no-overlap input suggested %v", got)
	}
}

func TestSimilarityOrdering(t *testing.T) {
	// Exact match outranks everything else.
	if similarity("circle", "circle") <= similarity("circle", "circle_sector") {
		t.Error("exact match does not outrank partial match")
	}
	// A shared prefix outranks the same overlap elsewhere.
	if similarity("tri", "triangle") <= similarity("tri", "geometry") {
		t.Error("prefix overlap does not outrank scattered overlap")
	}
}

func TestCommonSubsequence(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"triangle", "triangle", 8},
		{"trangle", "triangle", 7},
		{"abc", "xyz", 0},
		{"", "triangle", 0},
		{"square", "circle", 2},
	}

	for _, tt := range tests {
		if got := commonSubsequence(tt.a, tt.b); got != tt.want {
			t.Errorf("commonSubsequence(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
