package core

import (
	"regexp"
	"strings"
)

var (
	// "221B Baker Street": house number with an optional unit letter.
	houseNumberRegex = regexp.MustCompile(`^(\d+[A-Za-z]?)\s+(.*)$`)

	// "12 Main St", "12Main St", "42": any leading digit run.
	leadingDigitsRegex = regexp.MustCompile(`^(\d+\s*)(.*)$`)
)

// SplitAddress derives a second address line from the first when the second
// is blank.
//
// A leading house number becomes line 1 and the rest of the street becomes
// line 2. When line 1 does not start with a number, line 2 repeats line 1.
func SplitAddress(line1, line2 string) (string, string) {
	if line2 != "" || line1 == "" {
		return line1, line2
	}

	m := houseNumberRegex.FindStringSubmatch(line1)
	if m == nil {
		m = leadingDigitsRegex.FindStringSubmatch(line1)
	}
	if m == nil {
		return line1, line1
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}
