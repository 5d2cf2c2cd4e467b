package core

import "strings"

// SplitName resolves first and last name for courier exports.
//
// An explicit last name wins and the inputs are returned as given. Without
// one, fullName is split on whitespace: the first token is the first name and
// the remaining tokens form the last name. A single-token full name fills
// both slots, and a full name of only whitespace leaves both empty. With
// neither last nor full name, firstName fills both slots.
func SplitName(firstName, lastName, fullName string) (string, string) {
	if lastName != "" {
		return firstName, lastName
	}
	if fullName == "" {
		return firstName, firstName
	}

	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], tokens[0]
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}
