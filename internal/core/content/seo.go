package content

import (
	"strings"
	"unicode/utf8"
)

const (
	seoTitleMax       = 60
	seoDescriptionMax = 160
)

// SEOTitle returns override when set, otherwise the title truncated
// to 60 characters on a word boundary
func SEOTitle(title, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return truncateWords(title, seoTitleMax)
}

// SEODescription returns override when set, otherwise the excerpt
// truncated to 160 characters on a word boundary
func SEODescription(excerpt, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return truncateWords(excerpt, seoDescriptionMax)
}

// truncateWords cuts s to at most max bytes without splitting a word.
// A single word longer than max is cut hard
func truncateWords(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	// back up to a rune boundary so a multibyte rune is never split
	for len(cut) > 0 && !utf8.RuneStart(s[len(cut)]) {
		cut = s[:len(cut)-1]
	}
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ")
}
