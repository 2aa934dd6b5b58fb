// Package sanitizer normalizes free-text input before validation and storage.
package sanitizer

import "strings"

// TrimAndNormalize trims surrounding whitespace and collapses internal runs of
// whitespace into single spaces.
func TrimAndNormalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName prepares a display name such as a hotel or room type name.
func NormalizeName(s string) string {
	return TrimAndNormalize(s)
}
