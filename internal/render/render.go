// Package render implements the layout-to-Markdown pipeline: a recursive
// walk over the block tree of each page that classifies block types,
// reflows their content, embeds assets as data URIs and assembles the
// final document with page dividers and navigation anchors.
package render

import (
	"fmt"
	"strings"

	"github.com/roboco-io/layout2md/internal/layout"
)

// NavEntry records a heading discovered during rendering, suitable for
// table-of-contents construction by a downstream consumer.
type NavEntry struct {
	Title    string
	Page     int // 1-based
	AnchorID string
	Level    int // 1 or 2
}

// Options controls presentation details of the generated document.
type Options struct {
	Language      string // page divider label locale: en, zh, ko
	Attribution   string // trailing attribution line
	MaxImageWidth int    // embedded image width cap, percent
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = "en"
	}
	if o.Attribution == "" {
		o.Attribution = "Generated by layout2md"
	}
	if o.MaxImageWidth <= 0 || o.MaxImageWidth > 100 {
		o.MaxImageWidth = 100
	}
	return o
}

// Converter renders layout descriptions. It holds no mutable state across
// calls; converting the same document twice yields identical bytes.
type Converter struct {
	assets Embedder
	opts   Options
}

// New creates a converter using the given asset embedder.
func New(assets Embedder, opts Options) *Converter {
	return &Converter{assets: assets, opts: opts.withDefaults()}
}

const stylePreamble = "<style>\n  body { font-family: -apple-system, BlinkMacSystemFont, \"Segoe UI\", Roboto, \"Helvetica Neue\", Arial, sans-serif; }\n  img { border-radius: 4px; }\n  code { background: #f4f4f4; padding: 0.2em 0.4em; border-radius: 3px; font-size: 0.9em; }\n  pre { background: #f8f8f8; padding: 1em; border-radius: 6px; overflow-x: auto; }\n</style>\n\n"

const (
	openingRule = "<hr style=\"border: none; height: 1px; background: #ddd; margin: 2em 0;\" />\n\n"
	closingRule = "\n<hr style=\"border: none; height: 1px; background: #ddd; margin: 3em 0;\" />\n"
)

// pageLabels maps the configured language to its page divider label format.
var pageLabels = map[string]string{
	"en": "Page %d",
	"zh": "第 %d 页",
	"ko": "%d 페이지",
}

// Convert renders the whole description and returns the accumulated
// navigation entries alongside the document text.
func (c *Converter) Convert(doc *layout.Document) (string, []NavEntry) {
	var entries []NavEntry

	// Pages are rendered first so the entry count is known before the
	// preamble area is assembled.
	contents := make([]string, 0, len(doc.Pages))
	for i := range doc.Pages {
		content, pageEntries := c.renderPage(&doc.Pages[i])
		contents = append(contents, content)
		entries = append(entries, pageEntries...)
	}

	var sb strings.Builder
	sb.WriteString(stylePreamble)
	if len(entries) > 0 {
		sb.WriteString("<div id=\"toc-top\"></div>\n\n")
	}
	sb.WriteString(openingRule)

	for i, content := range contents {
		sb.WriteString(content)
		sb.WriteString(c.pageDivider(i + 1))
	}

	sb.WriteString(closingRule)
	sb.WriteString("<div style=\"text-align: center; color: #999; font-size: 0.85em; padding: 1em 0;\">\n")
	sb.WriteString(c.opts.Attribution)
	sb.WriteString("\n</div>\n")

	return sb.String(), entries
}

// renderPage wraps the page's content blocks with its header banner and
// footer container built from the discarded furniture blocks.
func (c *Converter) renderPage(page *layout.Page) (string, []NavEntry) {
	var sb strings.Builder
	var entries []NavEntry

	var headerLike, footerLike []*layout.Block
	for i := range page.DiscardedBlocks {
		b := &page.DiscardedBlocks[i]
		switch b.Type {
		case layout.BlockTypeHeader, layout.BlockTypePageNumber:
			headerLike = append(headerLike, b)
		default:
			footerLike = append(footerLike, b)
		}
	}

	var headerTexts []string
	for _, b := range headerLike {
		if t := furnitureText(b); t != "" {
			headerTexts = append(headerTexts, t)
		}
	}
	if len(headerTexts) > 0 {
		fmt.Fprintf(&sb,
			"<div style=\"background: #fafafa; padding: 0.5em 1em; margin-bottom: 1em; border-radius: 4px; font-size: 0.85em; color: #888;\">\n<span>%s</span>\n</div>\n\n",
			escapeHTML(strings.Join(headerTexts, " · ")))
	}

	for i := range page.ParaBlocks {
		frag, entry := c.renderBlock(&page.ParaBlocks[i], page.PageIdx)
		sb.WriteString(frag)
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	var footerFrags []string
	for _, b := range footerLike {
		if frag := renderFurniture(b); frag != "" {
			footerFrags = append(footerFrags, frag)
		}
	}
	if len(footerFrags) > 0 {
		sb.WriteString("<div style=\"background: #f8f8f8; padding: 0.8em 1em; margin-top: 1.5em; border-left: 3px solid #ddd; border-radius: 0 4px 4px 0; font-size: 0.85em; color: #666;\">\n")
		for _, frag := range footerFrags {
			sb.WriteString(frag)
		}
		sb.WriteString("</div>\n\n")
	}

	return sb.String(), entries
}

func (c *Converter) pageDivider(pageNum int) string {
	format, ok := pageLabels[c.opts.Language]
	if !ok {
		format = pageLabels["en"]
	}
	return fmt.Sprintf(
		"\n<div style=\"display: flex; align-items: center; margin: 2.5em 0; gap: 1em;\">\n  <div style=\"flex: 1; height: 1px; background: #ddd;\"></div>\n  <span style=\"color: #888; font-size: 0.85em;\">%s</span>\n  <div style=\"flex: 1; height: 1px; background: #ddd;\"></div>\n</div>\n\n",
		fmt.Sprintf(format, pageNum))
}
