package i18n

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"en", English},
		{"he", Hebrew},
		{"", English},
		{"fr", English},
	}

	for _, tt := range tests {
		if got := Parse(tt.code); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestRTL(t *testing.T) {
	if RTL(English) {
		t.Error("english marked rtl")
	}
	if !RTL(Hebrew) {
		t.Error("hebrew not marked rtl")
	}
}

func TestT(t *testing.T) {
	if got := T(English, "step.outline"); got != "Draw the outline" {
		t.Errorf("T(en, step.outline) = %q", got)
	}
	if got := T(Hebrew, "step.outline"); got == "Draw the outline" || got == "" {
		t.Errorf("T(he, step.outline) not translated: %q", got)
	}
	// Unknown keys fall back to the key itself.
	if got := T(Hebrew, "step.nonexistent"); got != "step.nonexistent" {
		t.Errorf("missing key = %q, want the key back", got)
	}
}

func TestHebrewCoversEnglishKeys(t *testing.T) {
	for key := range tables[English] {
		if _, ok := tables[Hebrew][key]; !ok {
			t.Errorf("key %q has no hebrew translation", key)
		}
	}
	for key := range tables[Hebrew] {
		if _, ok := tables[English][key]; !ok {
			t.Errorf("hebrew-only key %q", key)
		}
	}
}
