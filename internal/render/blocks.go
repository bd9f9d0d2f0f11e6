package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/roboco-io/layout2md/internal/layout"
)

// renderBlock dispatches a content block to its renderer. Unrecognized
// block types fall back to the text rule. Every renderer degrades to an
// empty fragment on absent or malformed input; none of them fail.
func (c *Converter) renderBlock(b *layout.Block, pageIdx int) (string, *NavEntry) {
	switch b.Type {
	case layout.BlockTypeTitle:
		return c.renderTitle(b, pageIdx)
	case layout.BlockTypeText:
		return c.renderText(b), nil
	case layout.BlockTypeList:
		return c.renderList(b), nil
	case layout.BlockTypeImage:
		return c.renderImage(b), nil
	case layout.BlockTypeTable:
		return c.renderTable(b), nil
	case layout.BlockTypeInterlineEq:
		return c.renderEquation(b), nil
	case layout.BlockTypeIndex:
		return c.renderIndex(b), nil
	default:
		return c.renderText(b), nil
	}
}

// renderSpans renders an ordered span sequence and reports whether any
// formula span was present. Missing assets are omitted silently.
func (c *Converter) renderSpans(spans []layout.Span) (string, bool) {
	var sb strings.Builder
	hasFormula := false

	for _, span := range spans {
		switch span.Type {
		case layout.SpanTypeText:
			sb.WriteString(escapeHTML(span.Content))

		case layout.SpanTypeInlineEq:
			hasFormula = true
			if span.Content != "" {
				sb.WriteString(" $")
				sb.WriteString(span.Content)
				sb.WriteString("$ ")
			}

		case layout.SpanTypeInterlineEq:
			hasFormula = true
			if span.Content != "" {
				sb.WriteString("\n$$\n")
				sb.WriteString(span.Content)
				sb.WriteString("\n$$\n\n")
			}

		case layout.SpanTypeImage:
			if span.ImagePath == "" {
				continue
			}
			if res, ok := c.assets.Embed(span.ImagePath); ok {
				fmt.Fprintf(&sb,
					`<img src="%s" alt="" style="max-width: %d%%; height: auto;" />`,
					res.DataURI, c.opts.MaxImageWidth)
			}
		}
	}

	return sb.String(), hasFormula
}

func (c *Converter) renderTitle(b *layout.Block, pageIdx int) (string, *NavEntry) {
	text := strings.TrimSpace(extractText(b))
	if text == "" {
		return "", nil
	}

	id := anchorID(text, pageIdx)

	// Short titles get the larger heading; the cut is 20 runes.
	level := 1
	if utf8.RuneCountInString(text) > 20 {
		level = 2
	}

	entry := &NavEntry{
		Title:    text,
		Page:     pageIdx + 1,
		AnchorID: id,
		Level:    level,
	}

	// Native Markdown heading with an HTML anchor as navigation target.
	heading := strings.Repeat("#", level+1)
	return fmt.Sprintf("<a id=\"%s\"></a>\n%s %s\n\n", id, heading, text), entry
}

func (c *Converter) renderText(b *layout.Block) string {
	var sb strings.Builder
	for _, line := range b.Lines {
		frag, _ := c.renderSpans(line.Spans)
		sb.WriteString(frag)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return ""
	}
	return text + "\n\n"
}

func (c *Converter) renderList(b *layout.Block) string {
	var items []string
	for i := range b.Blocks {
		text := strings.TrimSpace(extractText(&b.Blocks[i]))
		if text != "" {
			items = append(items, "- "+text)
		}
	}
	if len(items) == 0 {
		return ""
	}
	return strings.Join(items, "\n") + "\n\n"
}

func (c *Converter) renderImage(b *layout.Block) string {
	var imgHTML string
	var captionHTML strings.Builder

	for i := range b.Blocks {
		sub := &b.Blocks[i]
		switch sub.Type {
		case layout.BlockTypeImageBody:
			if imgHTML != "" {
				continue
			}
			if res, ok := c.embedBodySpan(sub, layout.SpanTypeImage); ok {
				imgHTML = fmt.Sprintf(
					`<img src="%s" alt="figure" style="max-width: %d%%; height: auto; display: block; margin: 0 auto;" />`,
					res.DataURI, c.opts.MaxImageWidth)
			}
		case layout.BlockTypeImageCaption, layout.BlockTypeImageFootnote:
			text := strings.TrimSpace(extractText(sub))
			if text != "" {
				fmt.Fprintf(&captionHTML,
					`<figcaption style="text-align: center; font-size: 0.9em; color: #666; margin-top: 0.5em;">%s</figcaption>`,
					escapeHTML(text))
			}
		}
	}

	// Captions alone never render.
	if imgHTML == "" {
		return ""
	}

	return fmt.Sprintf("<figure style=\"margin: 1.5em 0; text-align: center;\">\n%s\n%s\n</figure>\n\n",
		imgHTML, captionHTML.String())
}

func (c *Converter) renderTable(b *layout.Block) string {
	var tableHTML, captionHTML, footnoteHTML string

	for i := range b.Blocks {
		sub := &b.Blocks[i]
		switch sub.Type {
		case layout.BlockTypeTableBody:
			if tableHTML != "" {
				continue
			}
			// The table arrives pre-rendered as a picture; cell structure
			// is not reconstructed.
			if res, ok := c.embedBodySpan(sub, layout.SpanTypeTable); ok {
				tableHTML = fmt.Sprintf(
					`<img src="%s" alt="table" style="max-width: %d%%; height: auto; display: block; margin: 0 auto;" />`,
					res.DataURI, c.opts.MaxImageWidth)
			}
		case layout.BlockTypeTableCaption:
			text := strings.TrimSpace(extractText(sub))
			if text != "" {
				captionHTML = fmt.Sprintf(
					`<caption style="font-weight: bold; margin-bottom: 0.5em;">%s</caption>`,
					escapeHTML(text))
			}
		case layout.BlockTypeTableFootnote:
			text := strings.TrimSpace(extractText(sub))
			if text != "" {
				footnoteHTML = fmt.Sprintf(
					`<p style="font-size: 0.85em; color: #666; margin-top: 0.5em;">%s</p>`,
					escapeHTML(text))
			}
		}
	}

	if tableHTML == "" {
		return ""
	}

	return fmt.Sprintf("<div style=\"margin: 1.5em 0; overflow-x: auto;\">\n%s\n%s\n%s\n</div>\n\n",
		captionHTML, tableHTML, footnoteHTML)
}

// renderEquation renders a display equation block. Only the first
// interline_equation span across all lines is consulted: an embeddable
// image wins over raw source, and a span with neither yields nothing.
func (c *Converter) renderEquation(b *layout.Block) string {
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			if span.Type != layout.SpanTypeInterlineEq {
				continue
			}
			if span.ImagePath != "" {
				if res, ok := c.assets.Embed(span.ImagePath); ok {
					return fmt.Sprintf(
						"<div style=\"margin: 1em 0; text-align: center;\">\n<img src=\"%s\" alt=\"equation\" style=\"max-height: 80px;\" />\n</div>\n\n",
						res.DataURI)
				}
			}
			if span.Content != "" {
				return fmt.Sprintf("\n$$\n%s\n$$\n\n", span.Content)
			}
			return ""
		}
	}
	return ""
}

func (c *Converter) renderIndex(b *layout.Block) string {
	text := strings.TrimSpace(extractText(b))
	if text == "" {
		return ""
	}
	return text + "\n\n"
}

// embedBodySpan finds the first span of the wanted type carrying an asset
// reference that actually embeds.
func (c *Converter) embedBodySpan(b *layout.Block, want layout.SpanType) (Resource, bool) {
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			if span.Type != want || span.ImagePath == "" {
				continue
			}
			if res, ok := c.assets.Embed(span.ImagePath); ok {
				return res, true
			}
		}
	}
	return Resource{}, false
}
