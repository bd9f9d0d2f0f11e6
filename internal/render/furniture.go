package render

import (
	"fmt"
	"strings"

	"github.com/roboco-io/layout2md/internal/layout"
)

// furnitureText is the text a furniture block contributes to the header
// banner join. Page numbers are partitioned with headers but never carry
// text into the output.
func furnitureText(b *layout.Block) string {
	if b.Type == layout.BlockTypePageNumber {
		return ""
	}
	return strings.TrimSpace(extractText(b))
}

// renderFurniture renders one footer-like furniture block according to its
// type. Page numbers and unrecognized furniture yield nothing.
func renderFurniture(b *layout.Block) string {
	text := strings.TrimSpace(extractText(b))
	if text == "" {
		return ""
	}
	switch b.Type {
	case layout.BlockTypeHeader, layout.BlockTypeFooter:
		return fmt.Sprintf(
			"<div style=\"background: #fafafa; padding: 0.5em 1em; margin-bottom: 1em; border-radius: 4px; font-size: 0.85em; color: #888;\">\n<span>%s</span>\n</div>\n",
			escapeHTML(text))
	case layout.BlockTypePageFootnote:
		return fmt.Sprintf("<p style=\"margin: 0.3em 0;\">%s</p>\n", escapeHTML(text))
	case layout.BlockTypeAsideText:
		return fmt.Sprintf(
			"<div style=\"font-style: italic; background: #fafafa; padding: 0.5em 1em; margin: 0.5em 0; border-radius: 4px; font-size: 0.85em; color: #888;\">%s</div>\n",
			escapeHTML(text))
	default:
		return ""
	}
}
