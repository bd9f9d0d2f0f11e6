package render

import (
	"fmt"
	"strings"
	"unicode"
)

// escapeHTML replaces the three characters with markup meaning. It is total
// and order-dependent: apply it once per fragment, escaped text fed back in
// gets double-escaped.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// anchorID derives the fragment identifier for a heading: lowercase the
// title, collapse every run of non-(alphanumeric|CJK ideograph) characters
// to one hyphen, trim hyphens, cap at 50 runes, fall back to "title", and
// prefix with the zero-based page index.
func anchorID(title string, pageIdx int) string {
	var sb strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(title) {
		if isAnchorRune(r) {
			sb.WriteRune(r)
			hyphen = false
		} else if !hyphen {
			sb.WriteRune('-')
			hyphen = true
		}
	}
	slug := strings.Trim(sb.String(), "-")
	if runes := []rune(slug); len(runes) > 50 {
		slug = string(runes[:50])
	}
	if slug == "" {
		slug = "title"
	}
	return fmt.Sprintf("toc-%d-%s", pageIdx, slug)
}

func isAnchorRune(r rune) bool {
	if r >= 0x4e00 && r <= 0x9fff { // CJK Unified Ideographs
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
