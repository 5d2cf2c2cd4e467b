package core

import "testing"

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name         string
		line1, line2 string
		want1, want2 string
	}{
		{"house number with unit letter", "221B Baker Street", "", "221B", "Baker Street"},
		{"plain house number", "12 Main St", "", "12", "Main St"},
		{"number glued to street", "12Main St", "", "12", "Main St"},
		{"number only", "42", "", "42", ""},
		{"no leading digits duplicates", "Downtown Plaza", "", "Downtown Plaza", "Downtown Plaza"},
		{"line two present", "12 Main St", "Apt 4", "12 Main St", "Apt 4"},
		{"both empty", "", "", "", ""},
		{"line one empty", "", "Suite 9", "", "Suite 9"},
		{"extra spacing trimmed", "7   Elm Road  ", "", "7", "Elm Road"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := SplitAddress(tt.line1, tt.line2)
			if got1 != tt.want1 || got2 != tt.want2 {
				t.Errorf("SplitAddress(%q, %q) = (%q, %q), want (%q, %q)",
					tt.line1, tt.line2, got1, got2, tt.want1, tt.want2)
			}
		})
	}
}
