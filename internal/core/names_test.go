package core

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name                string
		first, last, full   string
		wantFirst, wantLast string
	}{
		{"full name two tokens", "", "", "Jane Doe", "Jane", "Doe"},
		{"full name single token", "", "", "Prince", "Prince", "Prince"},
		{"full name many tokens", "", "", "Mary  Ann   van Dyke", "Mary", "Ann van Dyke"},
		{"full name surrounding space", "", "", "  Jane Doe ", "Jane", "Doe"},
		{"explicit last name wins", "John", "Smith", "Jane Doe", "John", "Smith"},
		{"explicit last name without first", "", "Smith", "Jane Doe", "", "Smith"},
		{"first name only", "Cher", "", "", "Cher", "Cher"},
		{"nothing", "", "", "", "", ""},
		{"whitespace full name is present but empty", "Cher", "", "   ", "", ""},
		{"full name overrides first", "Janet", "", "Jane Doe", "Jane", "Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFirst, gotLast := SplitName(tt.first, tt.last, tt.full)
			if gotFirst != tt.wantFirst || gotLast != tt.wantLast {
				t.Errorf("SplitName(%q, %q, %q) = (%q, %q), want (%q, %q)",
					tt.first, tt.last, tt.full, gotFirst, gotLast, tt.wantFirst, tt.wantLast)
			}
		})
	}
}
