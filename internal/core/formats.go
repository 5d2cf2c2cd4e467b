package core

import "strconv"

// Package dimensions shared by both couriers, in centimetres.
const (
	packageLength  = "10"
	packageBreadth = "8"
	packageHeight  = "2"
)

func init() {
	registerBuiltins()
}

// registerBuiltins installs the courier formats shipped with the binary.
func registerBuiltins() {
	Register(ShipRocketFormat())
	Register(ShipGlobalFormat())
}

// valueOr returns s, or fallback when s is empty.
func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// textOr returns s when it is present and non-empty, else fallback.
func textOr(s string, valid bool, fallback string) string {
	if !valid {
		return fallback
	}
	return valueOr(s, fallback)
}

// formatAmount renders a price in its shortest decimal form (5.5, 11).
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
