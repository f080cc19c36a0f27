package report

import "strings"

// NormalizeKingdom converts a kingdom name to its stored form: trimmed of
// surrounding whitespace and lowercased. Storage and comparison always use
// the normalized form; raw casing is a display concern.
func NormalizeKingdom(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
