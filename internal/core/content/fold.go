package content

import "strings"

// Fold normalizes s for case-insensitive search comparisons
func Fold(s string) string {
	return strings.TrimSpace(foldChain(strings.ToValidUTF8(s, "")))
}
