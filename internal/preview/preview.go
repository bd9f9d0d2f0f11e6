// Package preview converts generated Markdown into a standalone HTML page
// for the --html output mode and the serve command.
package preview

import (
	"bytes"
	"fmt"
	stdhtml "html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// HTML converts the generated Markdown into a full HTML page. The Markdown
// embeds raw HTML (anchors, figures, styled dividers), so the renderer runs
// with raw passthrough enabled; the input is our own output, not untrusted
// user markup.
func HTML(title string, markdown []byte) ([]byte, error) {
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

	var body bytes.Buffer
	if err := md.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>%s</title>\n</head>\n<body style=\"max-width: 860px; margin: 0 auto; padding: 2em 1em;\">\n", stdhtml.EscapeString(title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
