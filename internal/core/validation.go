package core

// validation.go provides the required-field checks applied to derived export rows.
//
// Validation runs after derivation: names are split, addresses divided and
// countries resolved before the check, so a row is judged on the values that
// would actually be written. A failing row is not an error. It becomes a
// SkipReason listing every missing field so callers can report or assert on
// the exact cause.

import (
	"fmt"
	"strings"
)

// SkipReason explains why a row was left out of an export.
type SkipReason struct {
	Missing []string // Output field names that were empty, in check order
}

func (r SkipReason) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(r.Missing, ", "))
}

// RequiredField pairs an output field name with its derived value.
type RequiredField struct {
	Name  string
	Value string
}

// CheckRequired returns a SkipReason naming every empty field, or nil when
// all fields are present. Whitespace-only values count as empty.
func CheckRequired(fields ...RequiredField) *SkipReason {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &SkipReason{Missing: missing}
}
