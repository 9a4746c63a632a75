package helpers

import "strings"

// SplitName splits a display name into given name(s) and surname, treating
// the last whitespace token as the surname. This is a heuristic: a
// single-token name cannot be split and is returned as the surname with an
// empty given name, leaving the caller to decide how to report it.
func SplitName(name string) (given, surname string, ok bool) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", "", false
	case 1:
		return "", parts[0], false
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1], true
	}
}

// InvertedName formats a display name as "surname, given name(s)". Names
// that cannot be split are returned unchanged.
func InvertedName(name string) string {
	given, surname, ok := SplitName(name)
	if !ok {
		return name
	}
	return surname + ", " + given
}
