// Package content implements pure derivations for blog posts:
// read time, SEO fallbacks, slugs, and search folding
package content

import "strings"

// wordsPerMinute is the assumed adult reading speed
const wordsPerMinute = 200

// ReadTime estimates reading minutes for content, rounding up.
// Empty content reads in zero minutes, anything else takes at least one
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
