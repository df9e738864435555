package match

import (
	"strings"
)

// Normalize canonicalizes a bone name for fuzzy matching.
// The input is case-folded to lower and every space is replaced with an
// underscore, so "Upper Arm" and "upper_arm" compare equal.
// Normalize is idempotent.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
